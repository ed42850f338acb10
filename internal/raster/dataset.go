package raster

import (
	"fmt"
	"sort"
)

// Band is a single spectral band stored row-major. All elementwise
// operations return a new Band and follow IEEE-754 semantics, so a
// division by zero produces Inf/NaN per element instead of an error.
type Band []float64

func (b Band) Add(other Band) Band {
	result := make(Band, len(b))
	for i := range b {
		result[i] = b[i] + other[i]
	}
	return result
}

func (b Band) Sub(other Band) Band {
	result := make(Band, len(b))
	for i := range b {
		result[i] = b[i] - other[i]
	}
	return result
}

func (b Band) Mul(other Band) Band {
	result := make(Band, len(b))
	for i := range b {
		result[i] = b[i] * other[i]
	}
	return result
}

func (b Band) Div(other Band) Band {
	result := make(Band, len(b))
	for i := range b {
		result[i] = b[i] / other[i]
	}
	return result
}

// Scale multiplies every element by factor.
func (b Band) Scale(factor float64) Band {
	result := make(Band, len(b))
	for i := range b {
		result[i] = b[i] * factor
	}
	return result
}

// AddScalar adds value to every element.
func (b Band) AddScalar(value float64) Band {
	result := make(Band, len(b))
	for i := range b {
		result[i] = b[i] + value
	}
	return result
}

// SubFrom computes value − band for every element.
func (b Band) SubFrom(value float64) Band {
	result := make(Band, len(b))
	for i := range b {
		result[i] = value - b[i]
	}
	return result
}

// Reciprocal computes 1/x for every element.
func (b Band) Reciprocal() Band {
	result := make(Band, len(b))
	for i := range b {
		result[i] = 1.0 / b[i]
	}
	return result
}

// Dataset is a labeled collection of bands sharing one width×height
// shape. It is the in-memory counterpart of a multi-band satellite
// scene: bands are looked up, renamed and attached by name.
type Dataset struct {
	width  int
	height int
	bands  map[string]Band
}

func New(width, height int) *Dataset {
	return &Dataset{
		width:  width,
		height: height,
		bands:  make(map[string]Band),
	}
}

func (d *Dataset) Width() int  { return d.width }
func (d *Dataset) Height() int { return d.height }

// Get returns the band stored under name.
func (d *Dataset) Get(name string) (Band, error) {
	band, ok := d.bands[name]
	if !ok {
		return nil, fmt.Errorf("band %q: %w", name, ErrBandNotFound)
	}
	return band, nil
}

func (d *Dataset) Has(name string) bool {
	_, ok := d.bands[name]
	return ok
}

// Names returns the band names in sorted order.
func (d *Dataset) Names() []string {
	names := make([]string, 0, len(d.bands))
	for name := range d.bands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set attaches band under name, replacing any existing band with the
// same name.
func (d *Dataset) Set(name string, band Band) error {
	if len(band) != d.width*d.height {
		return fmt.Errorf("band %q has %d values, dataset shape is %dx%d", name, len(band), d.width, d.height)
	}
	d.bands[name] = band
	return nil
}

// Rename returns a new dataset with every band whose name appears as a
// key in mapping relabeled to the mapped name. Bands not covered by the
// mapping keep their name; mapping keys without a matching band are
// ignored. The band data is shared with the receiver, not copied.
func (d *Dataset) Rename(mapping map[string]string) *Dataset {
	renamed := New(d.width, d.height)
	for name, band := range d.bands {
		if newName, ok := mapping[name]; ok {
			name = newName
		}
		renamed.bands[name] = band
	}
	return renamed
}

// Divide returns a new dataset with every band divided elementwise by
// divisor.
func (d *Dataset) Divide(divisor float64) *Dataset {
	divided := New(d.width, d.height)
	for name, band := range d.bands {
		result := make(Band, len(band))
		for i := range band {
			result[i] = band[i] / divisor
		}
		divided.bands[name] = result
	}
	return divided
}
