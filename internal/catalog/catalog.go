// Package catalog provides the read-only set of market profiles the estimator prices against.
package catalog

import (
	"sort"

	"wholesale_go/internal/domain"
)

// Catalog maps market names to profiles.
// It is never modified after New returns, so concurrent reads need no locking.
type Catalog struct {
	profiles map[string]domain.MarketProfile
	names    []string
}

// New builds a catalog from profiles. The input map is copied.
func New(profiles map[string]domain.MarketProfile) *Catalog {
	c := &Catalog{
		profiles: make(map[string]domain.MarketProfile, len(profiles)),
		names:    make([]string, 0, len(profiles)),
	}
	for name, p := range profiles {
		p = p.Clone()
		p.Name = name
		c.profiles[name] = p
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c
}

// NewBundled builds a catalog from the market data shipped with the binary
func NewBundled() (*Catalog, error) {
	profiles, err := LoadBundled()
	if err != nil {
		return nil, err
	}
	return New(profiles), nil
}

// Resolve returns a copy of the profile for location
func (c *Catalog) Resolve(location string) (domain.MarketProfile, error) {
	p, ok := c.profiles[location]
	if !ok {
		return domain.MarketProfile{}, &domain.MarketNotFoundError{
			Location:  location,
			Available: c.AvailableMarkets(),
		}
	}
	return p.Clone(), nil
}

// AvailableMarkets returns the market names in alphabetical order
func (c *Catalog) AvailableMarkets() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of markets
func (c *Catalog) Len() int {
	return len(c.names)
}
