package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownTemplate is returned when a template name is not registered.
var ErrUnknownTemplate = errors.New("scene: unknown template")

// Template builds a fresh node tree.
type Template func() *Node

// Library holds named templates, the equivalent of reusable scene resources.
type Library struct {
	templates map[string]Template
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{templates: make(map[string]Template)}
}

// Register adds or replaces a template.
func (l *Library) Register(name string, t Template) {
	l.templates[name] = t
}

// Lookup returns the template registered under name.
func (l *Library) Lookup(name string) (Template, error) {
	t, ok := l.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownTemplate, name, strings.Join(l.Names(), ", "))
	}
	return t, nil
}

// Instantiate builds a new node tree from the named template.
func (l *Library) Instantiate(name string) (*Node, error) {
	t, err := l.Lookup(name)
	if err != nil {
		return nil, err
	}
	return t(), nil
}

// Names returns the registered template names, sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.templates))
	for name := range l.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
