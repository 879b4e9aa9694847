package cmdoc

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Registry indexes a generated DocSet for runtime lookup
type Registry struct {
	set    *DocSet
	byName map[string]CommandDoc
}

// NewRegistry builds a registry over an in-memory doc set
func NewRegistry(set *DocSet) *Registry {
	registry := &Registry{
		set:    set,
		byName: make(map[string]CommandDoc),
	}
	for _, cmd := range set.Commands() {
		registry.byName[cmd.Name] = cmd
	}
	return registry
}

// LoadRegistry reads a cmdoc_commands.json file written by the generator
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read documentation %s: %w", path, err)
	}
	return LoadRegistryFromBytes(data)
}

// LoadRegistryFromBytes parses a JSON doc set, e.g. one embedded with go:embed
func LoadRegistryFromBytes(data []byte) (*Registry, error) {
	var set DocSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse documentation: %w", err)
	}
	return NewRegistry(&set), nil
}

// Set returns the underlying doc set
func (r *Registry) Set() *DocSet {
	return r.set
}

// Lookup returns the command with the given name
func (r *Registry) Lookup(name string) (CommandDoc, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

// Names returns all command names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Group returns the named group's documentation
func (r *Registry) Group(name string) (GroupDoc, bool) {
	for _, group := range r.set.Groups {
		if group.Name == name {
			return group, true
		}
	}
	return GroupDoc{}, false
}

// ExecuteMethods returns every execute-method command in the set
func (r *Registry) ExecuteMethods() []CommandDoc {
	var out []CommandDoc
	for _, cmd := range r.set.Commands() {
		if cmd.IsExecuteMethod() {
			out = append(out, cmd)
		}
	}
	return out
}

// Len returns the number of documented commands
func (r *Registry) Len() int {
	return len(r.byName)
}
