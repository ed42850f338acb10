// Package indices computes Digital Earth Australia remote sensing band
// indices. It normalises the band naming of the supported collections
// into one canonical vocabulary, rescales raw digital numbers to
// unit-interval reflectance and evaluates the requested index recipe.
package indices

import (
	"fmt"
	"strings"

	"github.com/forest-guardian/dea-indices/internal/raster"
)

// reflectanceDivisor converts raw digital numbers to approximate
// unit-interval surface reflectance.
const reflectanceDivisor = 1000.0

// Calculate evaluates the index recipe registered under index against
// ds and attaches the result to ds as a new band. The band is named
// after customVarname, or after the index code when customVarname is
// empty; an existing band with that name is replaced.
//
// ds may carry its bands under canonical names or under the native
// names of the given collection. Band values are expected as raw
// digital numbers; they are divided by 1000 before the recipe runs.
// The returned dataset is ds itself.
func Calculate(ds *raster.Dataset, index, collection, customVarname string) (*raster.Dataset, error) {
	if index == "" {
		return nil, fmt.Errorf("%w: please choose one of %s", ErrMissingIndex, strings.Join(Indices(), ", "))
	}
	recipe, ok := registry[index]
	if !ok {
		return nil, fmt.Errorf("%w: %q, please choose one of %s", ErrUnknownIndex, index, strings.Join(Indices(), ", "))
	}

	if collection == "" {
		return nil, fmt.Errorf("%w: please specify one of %s so the index is calculated with the correct spectral bands",
			ErrMissingCollection, strings.Join(Collections(), ", "))
	}
	if _, ok := collectionBandAliases[collection]; !ok {
		return nil, fmt.Errorf("%w: %q, please specify one of %s",
			ErrUnknownCollection, collection, strings.Join(Collections(), ", "))
	}

	// Normalise band names, then rescale digital numbers to
	// reflectance. The rename map is filtered to the native names the
	// dataset actually carries, so alias variants never conflict.
	scaled := ds.Rename(bandRenames(collection, ds)).Divide(reflectanceDivisor)

	bands := make(map[string]raster.Band, len(recipe.bands))
	for _, name := range recipe.bands {
		band, err := scaled.Get(name)
		if err != nil {
			return nil, fmt.Errorf("%w: please verify that all bands required to compute %s are present; "+
				"band names vary per collection (got %q for %s, missing %q)",
				ErrMissingBand, index, strings.Join(ds.Names(), ", "), collection, name)
		}
		bands[name] = band
	}

	outputName := customVarname
	if outputName == "" {
		outputName = index
	}
	if err := ds.Set(outputName, recipe.apply(bands)); err != nil {
		return nil, err
	}
	return ds, nil
}
