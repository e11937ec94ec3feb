package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader loads level files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic campaign ordering.
func (l *Loader) LoadAll() ([]*Def, error) {
	var defs []*Def

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		def, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		defs = append(defs, def)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("level: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})

	return defs, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (*Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: reading file %s: %w", path, err)
	}
	def, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("level: parsing file %s: %w", path, err)
	}
	return def, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (*Def, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, def := range defs {
		if def.ID == id {
			return def, nil
		}
	}
	return nil, fmt.Errorf("level: not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(defs))
	for i, def := range defs {
		ids[i] = def.ID
	}
	return ids, nil
}
