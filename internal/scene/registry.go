package scene

import (
	"fmt"
	"sort"
)

// Registry maps names to built-in scene files.
type Registry struct {
	scenes map[string]*File
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{scenes: make(map[string]*File)}
}

// Register adds or replaces a scene. The file's Name is set to name.
func (r *Registry) Register(name string, f *File) {
	f.Name = name
	r.scenes[name] = f
}

// Lookup returns the scene file registered under name.
func (r *Registry) Lookup(name string) (*File, error) {
	f, ok := r.scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownScene, name, r.Names())
	}
	return f, nil
}

// Names lists registered scenes alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scenes))
	for n := range r.scenes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
