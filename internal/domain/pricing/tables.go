package pricing

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Closed enum sets accepted by validation. Every value must be covered by the
// loaded Tables.
var (
	BHKs            = []string{"1bhk", "2bhk", "3bhk", "4bhk", "5bhk"}
	HomePackages    = []string{"essentials", "premium", "luxe"}
	KitchenLayouts  = []string{LayoutStraight, LayoutLShaped, LayoutUShaped, LayoutParallel}
	KitchenPackages = []string{"essentials", "premium", "luxe"}
	WardrobeTypes   = []string{"sliding", "swing"}
	WardrobeTiers   = []string{"basic", "premium", "luxury"}
)

const (
	LayoutStraight = "straight"
	LayoutLShaped  = "l-shaped"
	LayoutUShaped  = "u-shaped"
	LayoutParallel = "parallel"
)

//go:embed default_tables.yaml
var defaultTablesYAML []byte

// Band is a home price range in lakhs. Max is nil for open-ended bands.
type Band struct {
	Min  float64
	Max  *float64
	Plus bool
}

// Tables is an immutable set of rate tables. Build it with LoadTables,
// LoadTablesFile or DefaultTables.
type Tables struct {
	homeUnit      float64
	homeBands     map[string]map[string]Band
	kitchenWidth  float64
	kitchenRates  map[string]map[string]float64
	wardrobeRates map[string]map[string]float64
}

type tablesFile struct {
	Home struct {
		Unit  float64                        `yaml:"unit"`
		Bands map[string]map[string]bandFile `yaml:"bands"`
	} `yaml:"home"`
	Kitchen struct {
		AssumedWidth float64                       `yaml:"assumed_width"`
		Rates        map[string]map[string]float64 `yaml:"rates"`
	} `yaml:"kitchen"`
	Wardrobe struct {
		Rates map[string]map[string]float64 `yaml:"rates"`
	} `yaml:"wardrobe"`
}

type bandFile struct {
	Min  float64  `yaml:"min"`
	Max  *float64 `yaml:"max"`
	Plus bool     `yaml:"plus"`
}

// DefaultTables returns the rate tables embedded in the binary.
func DefaultTables() (*Tables, error) {
	return LoadTables(bytes.NewReader(defaultTablesYAML))
}

// LoadTablesFile reads tables from a YAML file on disk.
func LoadTablesFile(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pricing tables: %w", err)
	}
	defer f.Close()
	return LoadTables(f)
}

// LoadTables decodes YAML tables and checks that every accepted enum value has
// an entry.
func LoadTables(r io.Reader) (*Tables, error) {
	var tf tablesFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tf); err != nil {
		return nil, fmt.Errorf("decode pricing tables: %w", err)
	}

	t := &Tables{
		homeUnit:      tf.Home.Unit,
		homeBands:     make(map[string]map[string]Band, len(tf.Home.Bands)),
		kitchenWidth:  tf.Kitchen.AssumedWidth,
		kitchenRates:  copyRates(tf.Kitchen.Rates),
		wardrobeRates: copyRates(tf.Wardrobe.Rates),
	}
	for bhk, pkgs := range tf.Home.Bands {
		inner := make(map[string]Band, len(pkgs))
		for pkg, b := range pkgs {
			band := Band{Min: b.Min, Plus: b.Plus}
			if b.Max != nil {
				max := *b.Max
				band.Max = &max
			}
			inner[pkg] = band
		}
		t.homeBands[bhk] = inner
	}

	if err := t.check(); err != nil {
		return nil, err
	}
	return t, nil
}

func copyRates(in map[string]map[string]float64) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(in))
	for k, pkgs := range in {
		inner := make(map[string]float64, len(pkgs))
		for pkg, rate := range pkgs {
			inner[pkg] = rate
		}
		out[k] = inner
	}
	return out
}

func (t *Tables) check() error {
	var missing []string

	if !positive(t.homeUnit) {
		missing = append(missing, "home.unit must be positive")
	}
	for _, bhk := range BHKs {
		for _, pkg := range HomePackages {
			b, ok := t.homeBands[bhk][pkg]
			switch {
			case !ok:
				missing = append(missing, fmt.Sprintf("home.bands.%s.%s", bhk, pkg))
			case !positive(b.Min):
				missing = append(missing, fmt.Sprintf("home.bands.%s.%s.min must be positive", bhk, pkg))
			case b.Max != nil && *b.Max < b.Min:
				missing = append(missing, fmt.Sprintf("home.bands.%s.%s.max below min", bhk, pkg))
			}
		}
	}

	if !positive(t.kitchenWidth) {
		missing = append(missing, "kitchen.assumed_width must be positive")
	}
	missing = append(missing, checkRates("kitchen.rates", t.kitchenRates, KitchenLayouts, KitchenPackages)...)
	missing = append(missing, checkRates("wardrobe.rates", t.wardrobeRates, WardrobeTypes, WardrobeTiers)...)

	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("pricing tables incomplete: %s", strings.Join(missing, ", "))
	}
	return nil
}

func checkRates(prefix string, rates map[string]map[string]float64, keys, pkgs []string) []string {
	var missing []string
	for _, k := range keys {
		for _, pkg := range pkgs {
			rate, ok := rates[k][pkg]
			if !ok {
				missing = append(missing, fmt.Sprintf("%s.%s.%s", prefix, k, pkg))
			} else if !positive(rate) {
				missing = append(missing, fmt.Sprintf("%s.%s.%s must be positive", prefix, k, pkg))
			}
		}
	}
	return missing
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// HomeUnit is the currency amount of one lakh.
func (t *Tables) HomeUnit() float64 { return t.homeUnit }

// KitchenAssumedWidth is the counter depth, in feet, used for kitchen area.
func (t *Tables) KitchenAssumedWidth() float64 { return t.kitchenWidth }

// HomeBand looks up the band for (bhk, package).
func (t *Tables) HomeBand(bhk, pkg string) (Band, error) {
	pkgs, ok := t.homeBands[bhk]
	if !ok {
		return Band{}, &UnknownKeyError{Table: "home", Key: bhk, Reason: "unknown BHK"}
	}
	b, ok := pkgs[pkg]
	if !ok {
		return Band{}, &UnknownKeyError{Table: "home", Key: bhk + "/" + pkg, Reason: "unknown package for BHK"}
	}
	if b.Max != nil {
		max := *b.Max
		b.Max = &max
	}
	return b, nil
}

// KitchenRate looks up the per-square-foot rate for (layout, package).
func (t *Tables) KitchenRate(layout, pkg string) (float64, error) {
	pkgs, ok := t.kitchenRates[layout]
	if !ok {
		return 0, &UnknownKeyError{Table: "kitchen", Key: layout, Reason: "invalid layout"}
	}
	rate, ok := pkgs[pkg]
	if !ok {
		return 0, &UnknownKeyError{Table: "kitchen", Key: layout + "/" + pkg, Reason: "invalid package"}
	}
	return rate, nil
}

// WardrobeRate looks up the per-square-foot rate for (type, package).
func (t *Tables) WardrobeRate(kind, pkg string) (float64, error) {
	pkgs, ok := t.wardrobeRates[kind]
	if !ok {
		return 0, &UnknownKeyError{Table: "wardrobe", Key: kind, Reason: "invalid type"}
	}
	rate, ok := pkgs[pkg]
	if !ok {
		return 0, &UnknownKeyError{Table: "wardrobe", Key: kind + "/" + pkg, Reason: "invalid package"}
	}
	return rate, nil
}
