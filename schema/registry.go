package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var ErrUnknownSchema = errors.New("unknown schema")

var (
	mu       sync.RWMutex
	registry = map[string]func() Schema{
		"blank":      func() Schema { return Failsafe() },
		"failsafe":   func() Schema { return Failsafe() },
		"yaml11":     func() Schema { return Yaml11() },
		"yaml12":     func() Schema { return Core() },
		"core":       func() Schema { return Core() },
		"yaml12json": func() Schema { return JSON() },
		"json":       func() Schema { return JSON() },
	}
)

// Default is the schema used when none is given, YAML 1.2 core.
func Default() Schema {
	return Core()
}

// Register makes s available to ByName under name.
func Register(name string, s Schema) error {
	if s == nil {
		return fmt.Errorf("cannot register nil schema")
	}
	name = strings.ToLower(name)
	if name == "" {
		return fmt.Errorf("schema must have a name")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[name]; exists {
		return fmt.Errorf("schema %q already registered", name)
	}
	registry[name] = func() Schema { return s }
	return nil
}

// ByName looks up a schema, ignoring case.
func ByName(name string) (Schema, error) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of %s", ErrUnknownSchema, name, strings.Join(names(), ", "))
	}
	return f(), nil
}

// Names returns the registered names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return names()
}

func names() []string {
	res := make([]string, 0, len(registry))
	for k := range registry {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
