// Package geotiff bridges GeoTIFF scenes on disk and the in-memory
// raster datasets the index calculations run on. Callers are expected
// to have called godal.RegisterAll once at startup.
package geotiff

import (
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/forest-guardian/dea-indices/internal/raster"
)

// LoadBands reads the GeoTIFF at path into a raster dataset. bandNames
// names the file's bands in order; a file with fewer bands than names
// is rejected, extra trailing bands are ignored.
func LoadBands(path string, bandNames []string) (*raster.Dataset, error) {
	dataset, err := godal.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open TIFF file: %v", err)
	}
	defer dataset.Close()

	xSize := dataset.Structure().SizeX
	ySize := dataset.Structure().SizeY
	fileBands := dataset.Bands()
	if len(bandNames) > len(fileBands) {
		return nil, fmt.Errorf("%s has %d bands, %d band names were given", path, len(fileBands), len(bandNames))
	}

	out := raster.New(xSize, ySize)
	for i, name := range bandNames {
		data := make([]float64, xSize*ySize)
		if err := fileBands[i].Read(0, 0, data, xSize, ySize); err != nil {
			return nil, fmt.Errorf("failed to read band %q from %s: %v", name, path, err)
		}
		if err := out.Set(name, data); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SaveBand writes band as a single-band GeoTIFF at dstPath, carrying
// over the geotransform and projection of the scene at srcPath.
func SaveBand(srcPath, dstPath string, band raster.Band) error {
	src, err := godal.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open TIFF file: %v", err)
	}
	defer src.Close()

	xSize := src.Structure().SizeX
	ySize := src.Structure().SizeY
	if len(band) != xSize*ySize {
		return fmt.Errorf("band has %d values, %s is %dx%d", len(band), srcPath, xSize, ySize)
	}

	dst, err := godal.Create(godal.GTiff, dstPath, 1, godal.Float64, xSize, ySize)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", dstPath, err)
	}
	defer dst.Close()

	geoTransform, err := src.GeoTransform()
	if err == nil {
		if err := dst.SetGeoTransform(geoTransform); err != nil {
			return fmt.Errorf("failed to set geotransform: %v", err)
		}
	}
	if sr := src.SpatialRef(); sr != nil {
		defer sr.Close()
		if err := dst.SetSpatialRef(sr); err != nil {
			return fmt.Errorf("failed to set projection: %v", err)
		}
	}

	if err := dst.Bands()[0].Write(0, 0, []float64(band), xSize, ySize); err != nil {
		return fmt.Errorf("failed to write band to %s: %v", dstPath, err)
	}
	return nil
}

// PixelCenters returns the WGS84 latitude and longitude of every pixel
// center of the scene at path, row-major like raster bands.
func PixelCenters(path string) (lats, lons []float64, err error) {
	dataset, err := godal.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open TIFF file: %v", err)
	}
	defer dataset.Close()

	geoTransform, err := dataset.GeoTransform()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get GeoTransform: %w", err)
	}

	xSize := dataset.Structure().SizeX
	ySize := dataset.Structure().SizeY
	xs := make([]float64, xSize*ySize)
	ys := make([]float64, xSize*ySize)
	for y := 0; y < ySize; y++ {
		for x := 0; x < xSize; x++ {
			i := y*xSize + x
			xs[i] = geoTransform[0] + geoTransform[1]*(float64(x)+0.5) + geoTransform[2]*(float64(y)+0.5)
			ys[i] = geoTransform[3] + geoTransform[4]*(float64(x)+0.5) + geoTransform[5]*(float64(y)+0.5)
		}
	}

	// Transform to WGS84
	srcSR := dataset.SpatialRef()
	defer srcSR.Close()
	dstSR, err := godal.NewSpatialRefFromEPSG(4326)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create WGS84 spatial ref: %v", err)
	}
	defer dstSR.Close()
	tr, err := godal.NewTransform(srcSR, dstSR)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create transform: %v", err)
	}
	defer tr.Close()

	if err := tr.TransformEx(xs, ys, nil, nil); err != nil {
		return nil, nil, fmt.Errorf("transform error: %w", err)
	}
	return ys, xs, nil
}
