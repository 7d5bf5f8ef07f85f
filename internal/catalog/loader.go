package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"wholesale_go/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed markets.yaml
var bundledMarkets []byte

// LoadBundled decodes the market data embedded in the binary
func LoadBundled() (map[string]domain.MarketProfile, error) {
	profiles, err := ParseYAML(bundledMarkets)
	if err != nil {
		return nil, fmt.Errorf("bundled market data: %w", err)
	}
	return profiles, nil
}

// LoadFile reads market profiles from a YAML file with the same layout as the bundled data
func LoadFile(path string) (map[string]domain.MarketProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	profiles, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return profiles, nil
}

// ParseYAML decodes a mapping of market name to profile and checks each profile
func ParseYAML(data []byte) (map[string]domain.MarketProfile, error) {
	var raw map[string]domain.MarketProfile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("no market profiles defined")
	}

	for name, p := range raw {
		p.Name = name
		if err := ValidateProfile(p); err != nil {
			return nil, err
		}
		raw[name] = p
	}
	return raw, nil
}

// ValidateProfile rejects profiles the estimator cannot price against
func ValidateProfile(p domain.MarketProfile) error {
	if p.Name == "" {
		return errors.New("market name is required")
	}
	if p.PricePerSqFtTurnkey <= 0 {
		return fmt.Errorf("market %q: price_per_sqft_turnkey must be positive", p.Name)
	}
	if p.DemandIndex <= 0 {
		return fmt.Errorf("market %q: demand_index must be positive", p.Name)
	}
	if len(p.ConditionAdjustment) == 0 {
		return fmt.Errorf("market %q: condition_adjustment is empty", p.Name)
	}
	for c := range p.ConditionAdjustment {
		if !c.Valid() {
			return fmt.Errorf("market %q: unknown condition %q in condition_adjustment", p.Name, c)
		}
	}
	for c := range p.RenovationCostPerSqFt {
		if !c.Valid() {
			return fmt.Errorf("market %q: unknown condition %q in renovation_cost_per_sqft", p.Name, c)
		}
	}
	for t := range p.PropertyTypeAdjustment {
		if !t.Valid() {
			return fmt.Errorf("market %q: unknown property type %q", p.Name, t)
		}
	}
	return nil
}
