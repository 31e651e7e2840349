package config

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Variant is a named display profile. Each one reproduces a layout the
// widget has shipped with: cell size, flip speed and whether the countdown
// can be edited digit by digit.
type Variant struct {
	Name         string
	FlipDuration time.Duration
	Scale        float64
	SetupArrows  bool
}

const DefaultVariant = "classic"

var Variants = map[string]Variant{
	"classic": {
		Name:         "classic",
		FlipDuration: FlipDuration,
		Scale:        DefaultScale,
		SetupArrows:  true,
	},
	"slow": {
		Name:         "slow",
		FlipDuration: SlowFlipDuration,
		Scale:        DefaultScale,
		SetupArrows:  true,
	},
	"compact": {
		Name:         "compact",
		FlipDuration: FlipDuration,
		Scale:        0.75,
		SetupArrows:  false,
	},
}

// LookupVariant returns the named variant. Names are case-insensitive.
func LookupVariant(name string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultVariant
	}
	v, ok := Variants[key]
	if !ok {
		return Variant{}, fmt.Errorf("unknown variant %q (have %s)", name, strings.Join(VariantNames(), ", "))
	}
	return v, nil
}

// VariantNames lists the known variants in sorted order.
func VariantNames() []string {
	names := make([]string, 0, len(Variants))
	for name := range Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
