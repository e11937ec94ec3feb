package level

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed campaign/*.yaml
var campaignFS embed.FS

// Campaign returns the built-in campaign levels, sorted by ID.
func Campaign() ([]*Def, error) {
	entries, err := campaignFS.ReadDir("campaign")
	if err != nil {
		return nil, fmt.Errorf("level: reading embedded campaign: %w", err)
	}

	var defs []*Def
	for _, entry := range entries {
		data, err := campaignFS.ReadFile("campaign/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("level: reading embedded %s: %w", entry.Name(), err)
		}
		def, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("level: parsing embedded %s: %w", entry.Name(), err)
		}
		defs = append(defs, def)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs, nil
}

// LoadCampaign returns levels from dir when given, falling back to the
// embedded campaign. Mirrors the config search order: explicit path wins.
func LoadCampaign(dir string) ([]*Def, error) {
	if dir != "" {
		defs, err := NewLoader(dir).LoadAll()
		if err != nil {
			return nil, err
		}
		if len(defs) == 0 {
			return nil, fmt.Errorf("level: no levels found in %s", dir)
		}
		return defs, nil
	}
	return Campaign()
}
