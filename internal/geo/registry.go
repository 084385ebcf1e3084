package geo

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/locations.yaml
var defaultLocationsYAML []byte

// Registry is an immutable set of locations keyed by slug.
type Registry struct {
	locations []*Location
	index     map[string]*Location
}

type registryFile struct {
	Locations []Location `yaml:"locations"`
}

//nolint:gochecknoglobals // The embedded registry is parsed once per process.
var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the registry embedded in the binary.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = Load(bytes.NewReader(defaultLocationsYAML))
	})
	return defaultRegistry, defaultErr
}

// LoadFile reads a registry from a YAML file.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening geo locations: %w", err)
	}
	defer f.Close()

	reg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading geo locations %s: %w", path, err)
	}
	return reg, nil
}

// Load decodes a YAML list of locations.
func Load(r io.Reader) (*Registry, error) {
	var raw registryFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing geo locations: %w", err)
	}
	return NewRegistry(raw.Locations...)
}

// NewRegistry indexes locations by slug, rejecting empty and duplicate slugs.
func NewRegistry(locations ...Location) (*Registry, error) {
	reg := &Registry{index: make(map[string]*Location, len(locations))}
	for i := range locations {
		loc := locations[i]
		if loc.Slug == "" {
			return nil, fmt.Errorf("geo location %d has an empty slug", i)
		}
		if _, dup := reg.index[loc.Slug]; dup {
			return nil, fmt.Errorf("duplicate geo location %q", loc.Slug)
		}
		reg.locations = append(reg.locations, &loc)
		reg.index[loc.Slug] = &loc
	}
	return reg, nil
}

// Lookup returns the location for slug.
func (r *Registry) Lookup(slug string) (*Location, error) {
	loc, ok := r.index[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, slug)
	}
	return loc, nil
}

// All returns the locations in file order.
func (r *Registry) All() []*Location {
	out := make([]*Location, len(r.locations))
	copy(out, r.locations)
	return out
}
