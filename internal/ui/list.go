package ui

import (
	"fmt"

	"github.com/forest-guardian/dea-indices/internal/indices"
)

// ListIndices prints every supported index with its reference.
func ListIndices() {
	fmt.Printf("%s\nSupported indices:%s\n", ColorGreen, ColorReset)
	for _, code := range indices.Indices() {
		fmt.Printf("%s%-8s %s%s\n", ColorGreen, code, indices.Describe(code), ColorReset)
	}
}

// ListCollections prints every supported collection.
func ListCollections() {
	fmt.Printf("%s\nSupported collections:%s\n", ColorGreen, ColorReset)
	fmt.Printf("%s%-15s bands already use canonical names (red, green, blue, nir, swir1, swir2)%s\n",
		ColorGreen, indices.CollectionGALandsat2, ColorReset)
	fmt.Printf("%s%-15s GA Landsat Collection 3, nbart_*/nbar_* band names%s\n",
		ColorGreen, indices.CollectionGALandsat3, ColorReset)
	fmt.Printf("%s%-15s GA Sentinel-2 Collection 1, nbart_*/nbar_* band names (nir_1, swir_2, swir_3)%s\n",
		ColorGreen, indices.CollectionGASentinel2, ColorReset)
}
