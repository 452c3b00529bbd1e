package clargs

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

// Cache memoizes registries by command line, so that repeated lookups of
// the same process arguments bind them only once. A Cache is safe for
// concurrent use. The zero value is ready to use.
type Cache struct {
	mu         sync.Mutex
	registries map[string]*Registry
}

// Get returns the registry built from the raw words, building it on first use.
// The schema and options only apply to the first call for a given command line.
func (c *Cache) Get(raw []string, schema Schema, opts ...Option) (*Registry, error) {
	key := cacheKey(raw)

	c.mu.Lock()
	defer c.mu.Unlock()

	if reg, found := c.registries[key]; found {
		return reg, nil
	}

	reg, err := Build(raw, schema, opts...)
	if err != nil {
		return nil, err
	}

	if c.registries == nil {
		c.registries = make(map[string]*Registry)
	}

	c.registries[key] = reg

	return reg, nil
}

// Reset drops all registries.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.registries = nil
}

var processCache Cache

// Parse returns the registry of the process command line, without the
// program name. It is built once, later calls returning the same registry.
func Parse(schema Schema, opts ...Option) (*Registry, error) {
	return processCache.Get(os.Args[1:], schema, opts...)
}

// cacheKey joins words with a NUL byte, which cannot appear in arguments.
func cacheKey(raw []string) string {
	return strconv.Itoa(len(raw)) + "\x00" + strings.Join(raw, "\x00")
}
