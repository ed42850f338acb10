package geotiff

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/forest-guardian/dea-indices/internal/indices"
	"github.com/forest-guardian/dea-indices/internal/raster"
	"github.com/gammazero/workerpool"
	"github.com/schollz/progressbar/v3"
)

// Scene is one GeoTIFF acquisition on disk.
type Scene struct {
	Path string
	Date time.Time
}

// SceneIndex is a computed index band for one scene.
type SceneIndex struct {
	Scene
	Band   raster.Band
	Width  int
	Height int
}

var sceneDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// SceneDate extracts the acquisition date from a scene filename, e.g.
// "plot_2023-04-17.tif".
func SceneDate(path string) (time.Time, error) {
	match := sceneDatePattern.FindString(filepath.Base(path))
	if match == "" {
		return time.Time{}, fmt.Errorf("no YYYY-MM-DD date in scene filename %s", filepath.Base(path))
	}
	return time.Parse("2006-01-02", match)
}

// ListScenes finds every .tif/.tiff scene in dir, sorted by the
// acquisition date parsed from the filename.
func ListScenes(dir string) ([]Scene, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene directory: %v", err)
	}

	var scenes []Scene
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".tif" && ext != ".tiff" {
			continue
		}
		date, err := SceneDate(entry.Name())
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, Scene{Path: filepath.Join(dir, entry.Name()), Date: date})
	}
	if len(scenes) == 0 {
		return nil, fmt.Errorf("no .tif scenes found in %s", dir)
	}

	sort.Slice(scenes, func(i, j int) bool { return scenes[i].Date.Before(scenes[j].Date) })
	return scenes, nil
}

// ComputeScenes loads every scene and computes the given index for it
// on a worker pool. bandNames names the file bands in order, using the
// collection's native vocabulary.
func ComputeScenes(scenes []Scene, bandNames []string, index, collection string) ([]SceneIndex, error) {
	wp := workerpool.New(4)
	progressBar := progressbar.Default(int64(len(scenes)), "Computing "+index)

	var mu sync.Mutex
	var firstErr error
	results := make([]SceneIndex, len(scenes))

	for i, scene := range scenes {
		i, scene := i, scene
		wp.Submit(func() {
			defer progressBar.Add(1)

			ds, err := LoadBands(scene.Path, bandNames)
			if err == nil {
				_, err = indices.Calculate(ds, index, collection, "")
			}
			var band raster.Band
			if err == nil {
				band, err = ds.Get(index)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("scene %s: %w", filepath.Base(scene.Path), err)
				}
				return
			}
			results[i] = SceneIndex{Scene: scene, Band: band, Width: ds.Width(), Height: ds.Height()}
		})
	}
	wp.StopWait()
	fmt.Println()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
