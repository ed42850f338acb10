package indices

import (
	"sort"

	"github.com/forest-guardian/dea-indices/internal/raster"
)

// Supported Digital Earth Australia collections. Each collection names
// the same spectra differently, so every collection carries a table
// mapping its native band names to the canonical vocabulary the index
// formulas are written against (red, green, blue, nir, swir1, swir2).
const (
	CollectionGALandsat2  = "ga_landsat_2"
	CollectionGALandsat3  = "ga_landsat_3"
	CollectionGASentinel2 = "ga_sentinel2_1"
)

// collectionBandAliases maps native band names to canonical ones, per
// collection. GA Landsat Collection 2 already uses canonical names.
// Both the nbart and nbar naming variants are listed for the other two;
// whichever subset a dataset actually carries is the one applied.
var collectionBandAliases = map[string]map[string]string{
	CollectionGALandsat2: {},
	CollectionGALandsat3: {
		"nbart_red":    "red",
		"nbart_green":  "green",
		"nbart_blue":   "blue",
		"nbart_nir":    "nir",
		"nbart_swir_1": "swir1",
		"nbart_swir_2": "swir2",
		"nbar_red":     "red",
		"nbar_green":   "green",
		"nbar_blue":    "blue",
		"nbar_nir":     "nir",
		"nbar_swir_1":  "swir1",
		"nbar_swir_2":  "swir2",
	},
	CollectionGASentinel2: {
		"nbart_red":    "red",
		"nbart_green":  "green",
		"nbart_blue":   "blue",
		"nbart_nir_1":  "nir",
		"nbart_swir_2": "swir1",
		"nbart_swir_3": "swir2",
		"nbar_red":     "red",
		"nbar_green":   "green",
		"nbar_blue":    "blue",
		"nbar_nir":     "nir",
		"nbar_swir_2":  "swir1",
		"nbar_swir_3":  "swir2",
	},
}

// Collections returns the supported collection identifiers, sorted.
func Collections() []string {
	names := make([]string, 0, len(collectionBandAliases))
	for name := range collectionBandAliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// bandRenames builds the rename mapping for a collection, keeping only
// the native names actually present in the dataset. Alias variants the
// dataset does not carry are never applied and never error.
func bandRenames(collection string, ds *raster.Dataset) map[string]string {
	renames := make(map[string]string)
	for native, canonical := range collectionBandAliases[collection] {
		if ds.Has(native) {
			renames[native] = canonical
		}
	}
	return renames
}
