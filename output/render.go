package output

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/forest-guardian/dea-indices/internal/properties"
	"github.com/forest-guardian/dea-indices/internal/raster"
)

// CreateIndexImage renders a computed index band as a PNG under
// <root>/data/result. Values are clamped to [-1, 1] and mapped onto a
// blue-white-green diverging ramp; NaN pixels stay transparent.
func CreateIndexImage(band raster.Band, width, height int, outputName string) (string, error) {
	outputPath := fmt.Sprintf("%s/data/result/%s.png", properties.RootPath(), outputName)
	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create result folder: %v", err)
	}

	dc := gg.NewContext(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			value := band[y*width+x]
			if math.IsNaN(value) {
				continue
			}
			r, g, b := rampColor(value)
			dc.SetRGB(r, g, b)
			dc.SetPixel(x, y)
		}
	}

	if err := dc.SavePNG(outputPath); err != nil {
		return "", fmt.Errorf("failed to save image: %v", err)
	}
	return outputPath, nil
}

// rampColor maps a clamped [-1, 1] value onto blue (-1) through white
// (0) to green (+1).
func rampColor(value float64) (r, g, b float64) {
	if value < -1 {
		value = -1
	}
	if value > 1 {
		value = 1
	}
	if value < 0 {
		t := value + 1
		return t, t, 1
	}
	return 1 - value, 1, 1 - value
}
