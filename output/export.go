package output

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/forest-guardian/dea-indices/internal/geotiff"
	"github.com/forest-guardian/dea-indices/internal/properties"
	"github.com/forest-guardian/dea-indices/internal/raster"
	"github.com/gocarina/gocsv"
)

// PixelSample is one georeferenced index value, the row format of the
// CSV export.
type PixelSample struct {
	Date      time.Time `csv:"date"`
	X         int       `csv:"x"`
	Y         int       `csv:"y"`
	Latitude  float64   `csv:"latitude"`
	Longitude float64   `csv:"longitude"`
	Index     string    `csv:"index"`
	Value     float64   `csv:"value"`
}

// BuildPixelSamples georeferences every non-NaN pixel of a computed
// index band against the scene it was computed from.
func BuildPixelSamples(tiffPath string, band raster.Band, width int, index string, date time.Time) ([]PixelSample, error) {
	lats, lons, err := geotiff.PixelCenters(tiffPath)
	if err != nil {
		return nil, err
	}
	if len(band) != len(lats) {
		return nil, fmt.Errorf("band has %d values, scene %s has %d pixels", len(band), tiffPath, len(lats))
	}

	samples := make([]PixelSample, 0, len(band))
	for i, value := range band {
		if math.IsNaN(value) {
			continue
		}
		samples = append(samples, PixelSample{
			Date:      date,
			X:         i % width,
			Y:         i / width,
			Latitude:  lats[i],
			Longitude: lons[i],
			Index:     index,
			Value:     value,
		})
	}
	return samples, nil
}

func samplesFilePath(name string) string {
	return fmt.Sprintf("%s/data/result/%s.csv", properties.RootPath(), name)
}

// SavePixelSamples writes samples as a CSV under <root>/data/result.
func SavePixelSamples(samples []PixelSample, name string) (string, error) {
	if len(samples) == 0 {
		return "", fmt.Errorf("no pixel samples to save")
	}

	filePath := samplesFilePath(name)
	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create result folder: %v", err)
	}
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create samples file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&samples, file); err != nil {
		return "", fmt.Errorf("failed to save pixel samples to file: %w", err)
	}
	return filePath, nil
}

// LoadPixelSamples reads a CSV previously written by SavePixelSamples.
func LoadPixelSamples(name string) ([]PixelSample, error) {
	file, err := os.Open(samplesFilePath(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open samples file: %w", err)
	}
	defer file.Close()

	var samples []PixelSample
	if err := gocsv.UnmarshalFile(file, &samples); err != nil {
		return nil, fmt.Errorf("failed to read pixel samples: %w", err)
	}
	return samples, nil
}
