package output

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/icza/mjpeg"
)

// CreateVideoFromImages composes per-date index PNGs into an AVI so an
// index can be watched evolving over a time series of scenes.
func CreateVideoFromImages(imagePaths []string, outputPath string, fps int) error {
	if len(imagePaths) == 0 {
		return fmt.Errorf("no images to animate")
	}
	if !strings.HasSuffix(outputPath, ".avi") {
		outputPath += ".avi"
	}
	if fps <= 0 {
		fps = 2
	}

	// The first frame fixes the video dimensions.
	firstFile, err := os.Open(imagePaths[0])
	if err != nil {
		return err
	}
	img, _, err := image.Decode(firstFile)
	firstFile.Close()
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", imagePaths[0], err)
	}
	bounds := img.Bounds()

	writer, err := mjpeg.New(outputPath, int32(bounds.Dx()), int32(bounds.Dy()), int32(fps))
	if err != nil {
		return err
	}
	defer writer.Close()

	for _, path := range imagePaths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", path, err)
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}); err != nil {
			return err
		}
		if err := writer.AddFrame(buf.Bytes()); err != nil {
			return err
		}
	}

	return nil
}
