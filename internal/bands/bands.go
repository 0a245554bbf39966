// Package bands maps continuous scores to user-facing labels through fixed,
// non-overlapping threshold bands.
package bands

import (
	"errors"
	"fmt"
)

// ErrUnordered is returned when band bounds are not strictly ascending.
var ErrUnordered = errors.New("band bounds must be strictly ascending")

// Band labels every score strictly below Upper that no earlier band claimed.
type Band struct {
	Upper float64 `yaml:"upper" json:"upper"`
	Label string  `yaml:"label" json:"label"`
}

// Scheme is an ordered list of bands plus the label for everything above
// the last bound.
type Scheme struct {
	bands []Band
	top   string
}

// New validates and builds a Scheme.
func New(top string, bands ...Band) (Scheme, error) {
	for i := 1; i < len(bands); i++ {
		if bands[i].Upper <= bands[i-1].Upper {
			return Scheme{}, fmt.Errorf("%w: %g after %g", ErrUnordered, bands[i].Upper, bands[i-1].Upper)
		}
	}
	return Scheme{bands: bands, top: top}, nil
}

// MustNew is New for package-level tables; it panics on invalid input.
func MustNew(top string, bands ...Band) Scheme {
	s, err := New(top, bands...)
	if err != nil {
		panic(err)
	}
	return s
}

// Label returns the label of the band containing score.
func (s Scheme) Label(score float64) string {
	for _, b := range s.bands {
		if score < b.Upper {
			return b.Label
		}
	}
	return s.top
}

// Bands returns the bounded bands in order.
func (s Scheme) Bands() []Band { return s.bands }

// Top returns the label above the last bound.
func (s Scheme) Top() string { return s.top }

// Stress thresholds on the 0–100 fuzzy stress score.
const (
	StressLeveUpper     = 35.0
	StressModeradoUpper = 65.0
)

// Stress is the stress-label scheme: Leve, Moderado, Alto.
var Stress = MustNew("Alto",
	Band{Upper: StressLeveUpper, Label: "Leve"},
	Band{Upper: StressModeradoUpper, Label: "Moderado"},
)
