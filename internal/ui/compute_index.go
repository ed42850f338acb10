package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/forest-guardian/dea-indices/internal/geotiff"
	"github.com/forest-guardian/dea-indices/internal/indices"
	"github.com/forest-guardian/dea-indices/internal/notification"
	"github.com/forest-guardian/dea-indices/internal/properties"
	"github.com/forest-guardian/dea-indices/output"
)

// ComputeIndex handles the UI for computing a single band index from a
// GeoTIFF scene and rendering/exporting the result.
func ComputeIndex() {
	PrintWarning("- Band values must be raw digital numbers (reflectance x1000).\n" +
		"- Band names are given in the order the file stores its bands,\n" +
		"  using the collection's native vocabulary (e.g. nbart_red).")

	tiffPath := ReadString("Enter the path to the GeoTIFF scene: ")

	collection := ReadStringDefault(
		fmt.Sprintf("Enter the collection (%s)", strings.Join(indices.Collections(), ", ")),
		defaultCollection())

	index := ReadString(fmt.Sprintf("Enter the index to compute (%s): ", strings.Join(indices.Indices(), ", ")))

	bandNames, err := ReadBandNames("Enter the band names in file order, comma separated: ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	customVarname := ReadString("Enter a custom output name (leave empty to use the index code): ")

	ds, err := geotiff.LoadBands(tiffPath, bandNames)
	if err != nil {
		PrintError(err.Error())
		return
	}

	if _, err := indices.Calculate(ds, index, collection, customVarname); err != nil {
		PrintError(err.Error())
		return
	}

	outputName := customVarname
	if outputName == "" {
		outputName = index
	}
	band, err := ds.Get(outputName)
	if err != nil {
		PrintError(err.Error())
		return
	}

	aoiPath := ReadString("Enter a GeoJSON file to mask the result to an area of interest (leave empty to skip): ")
	if aoiPath != "" {
		plotID := ReadString("Enter the plot id (leave empty for the first feature): ")
		aoi, err := geotiff.LoadAOI(aoiPath, plotID)
		if err != nil {
			PrintError(err.Error())
			return
		}
		band, err = geotiff.MaskOutside(tiffPath, band, aoi)
		if err != nil {
			PrintError(err.Error())
			return
		}
	}

	imagePath, err := output.CreateIndexImage(band, ds.Width(), ds.Height(), outputName)
	if err != nil {
		PrintError(err.Error())
		return
	}
	PrintSuccess("Index image created at " + imagePath)

	if strings.EqualFold(ReadString("Export per-pixel values as CSV? (y/N): "), "y") {
		date, err := geotiff.SceneDate(tiffPath)
		if err != nil {
			date = time.Now()
		}
		samples, err := output.BuildPixelSamples(tiffPath, band, ds.Width(), index, date)
		if err != nil {
			PrintError(err.Error())
			return
		}
		csvPath, err := output.SavePixelSamples(samples, outputName)
		if err != nil {
			PrintError(err.Error())
			return
		}
		PrintSuccess("Pixel samples saved to " + csvPath)
	}

	if strings.EqualFold(ReadString("Save the result as a single-band GeoTIFF? (y/N): "), "y") {
		dstPath := fmt.Sprintf("%s/data/result/%s.tif", properties.RootPath(), outputName)
		if err := geotiff.SaveBand(tiffPath, dstPath, band); err != nil {
			PrintError(err.Error())
			return
		}
		PrintSuccess("GeoTIFF saved to " + dstPath)
	}

	if err := notification.SendDiscordSuccessNotification(fmt.Sprintf("%s computed for %s", index, tiffPath)); err != nil {
		PrintError("Failed to send notification: " + err.Error())
	}
}

func defaultCollection() string {
	if collection := properties.DefaultCollection(); collection != "" {
		return collection
	}
	return indices.CollectionGALandsat3
}
