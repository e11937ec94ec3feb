package objects

import (
	"fmt"

	"github.com/mkovalev/bitgate/internal/level"
)

// Graph is a level's instantiated object graph. The graph owns its objects:
// they are created together during level setup and torn down together as a
// unit, which is what lets the mask registry shed their listeners
// deterministically without per-object destructor hooks.
type Graph struct {
	def  *level.Def
	objs []Object
}

// BuildGraph instantiates every object a level declares, in declaration
// order. On failure the objects built so far are torn down before the error
// is returned, so a half-built graph never leaks registrations.
func BuildGraph(def *level.Def, env Env) (*Graph, error) {
	g := &Graph{def: def}
	for i, objDef := range def.Objects {
		obj, err := Create(objDef, env)
		if err != nil {
			g.Teardown()
			return nil, fmt.Errorf("objects: building %s object %d: %w", def.ID, i, err)
		}
		g.objs = append(g.objs, obj)
	}
	return g, nil
}

// Def returns the level definition this graph was built from.
func (g *Graph) Def() *level.Def {
	return g.def
}

// Objects returns the live objects in declaration order.
func (g *Graph) Objects() []Object {
	return g.objs
}

// Teardown detaches every object in reverse creation order and empties the
// graph. Implements session.Level; runs to completion before the session
// machine resets the mask and registry.
func (g *Graph) Teardown() {
	for i := len(g.objs) - 1; i >= 0; i-- {
		g.objs[i].Teardown()
	}
	g.objs = nil
}
