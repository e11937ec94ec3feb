package objects

import (
	"fmt"
	"sort"

	"github.com/mkovalev/bitgate/internal/level"
)

// Factory creates an object from its level definition. Factories run during
// level setup, after the mask and respawn tracker have been reset; they may
// register listeners and establish the spawn as part of construction.
type Factory func(def level.ObjectDef, env Env) (Object, error)

var factories = make(map[string]Factory)

// Register adds an object kind factory. Called from each kind's init()
// function, allowing level instantiation to discover kinds without hardcoded
// dependencies. Panics if the kind is already registered.
func Register(kind string, f Factory) {
	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("objects: kind %q already registered", kind))
	}
	factories[kind] = f
}

// Create instantiates an object by its kind name.
// Returns an error if the kind is not registered.
func Create(def level.ObjectDef, env Env) (Object, error) {
	f, ok := factories[def.Kind]
	if !ok {
		return nil, fmt.Errorf("objects: unknown kind %q", def.Kind)
	}
	return f(def, env)
}

// Kinds returns all registered kind names, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Exists checks if a kind with the given name is registered.
func Exists(kind string) bool {
	_, ok := factories[kind]
	return ok
}
