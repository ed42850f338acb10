package geotiff

import (
	"fmt"
	"math"
	"os"

	"github.com/forest-guardian/dea-indices/internal/raster"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// LoadAOI reads a GeoJSON FeatureCollection and returns the geometry
// of the feature whose plot_id property matches plotID. An empty
// plotID selects the first feature.
func LoadAOI(path, plotID string) (orb.Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read GeoJSON file: %v", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GeoJSON: %w", err)
	}

	for _, feature := range fc.Features {
		if plotID == "" || feature.Properties.MustString("plot_id", "") == plotID {
			return feature.Geometry, nil
		}
	}
	return nil, fmt.Errorf("geometry not found for plot %q in %s", plotID, path)
}

// MaskOutside returns a copy of band with every pixel whose center
// falls outside the area of interest set to NaN. The AOI geometry is
// expected in WGS84, matching the GeoJSON convention; pixel centers of
// the scene at path are transformed accordingly.
func MaskOutside(path string, band raster.Band, aoi orb.Geometry) (raster.Band, error) {
	lats, lons, err := PixelCenters(path)
	if err != nil {
		return nil, err
	}
	if len(band) != len(lats) {
		return nil, fmt.Errorf("band has %d values, scene %s has %d pixels", len(band), path, len(lats))
	}

	contains := func(p orb.Point) bool {
		switch geom := aoi.(type) {
		case orb.Polygon:
			return planar.PolygonContains(geom, p)
		case orb.MultiPolygon:
			return planar.MultiPolygonContains(geom, p)
		default:
			return false
		}
	}

	masked := make(raster.Band, len(band))
	for i := range band {
		if contains(orb.Point{lons[i], lats[i]}) {
			masked[i] = band[i]
		} else {
			masked[i] = math.NaN()
		}
	}
	return masked, nil
}
