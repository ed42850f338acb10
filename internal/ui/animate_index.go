package ui

import (
	"fmt"
	"strings"

	"github.com/forest-guardian/dea-indices/internal/geotiff"
	"github.com/forest-guardian/dea-indices/internal/indices"
	"github.com/forest-guardian/dea-indices/internal/properties"
	"github.com/forest-guardian/dea-indices/output"
)

// AnimateIndex handles the UI for computing an index over a directory
// of dated scenes and composing the rendered frames into a video.
func AnimateIndex() {
	PrintWarning("- Scene filenames must carry the acquisition date as YYYY-MM-DD\n" +
		"  (e.g. plot_2023-04-17.tif).\n" +
		"- All scenes must share the same band layout.")

	dir := ReadString("Enter the directory holding the GeoTIFF scenes: ")

	collection := ReadStringDefault(
		fmt.Sprintf("Enter the collection (%s)", strings.Join(indices.Collections(), ", ")),
		defaultCollection())

	index := ReadString(fmt.Sprintf("Enter the index to compute (%s): ", strings.Join(indices.Indices(), ", ")))

	bandNames, err := ReadBandNames("Enter the band names in file order, comma separated: ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	scenes, err := geotiff.ListScenes(dir)
	if err != nil {
		PrintError(err.Error())
		return
	}

	results, err := geotiff.ComputeScenes(scenes, bandNames, index, collection)
	if err != nil {
		PrintError(err.Error())
		return
	}

	var framePaths []string
	for _, result := range results {
		frameName := fmt.Sprintf("%s_%s", index, result.Date.Format("2006-01-02"))
		framePath, err := output.CreateIndexImage(result.Band, result.Width, result.Height, frameName)
		if err != nil {
			PrintError(err.Error())
			return
		}
		framePaths = append(framePaths, framePath)
	}

	fps, err := ReadPositiveInt("Enter frames per second (e.g. 2): ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	videoPath := fmt.Sprintf("%s/data/result/%s.avi", properties.RootPath(), index)
	if err := output.CreateVideoFromImages(framePaths, videoPath, fps); err != nil {
		PrintError(err.Error())
		return
	}
	PrintSuccess(fmt.Sprintf("Video with %d frames created at %s", len(framePaths), videoPath))
}
