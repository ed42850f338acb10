package geotiff

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneDate(t *testing.T) {
	date, err := SceneDate("plot_a_2023-04-17.tif")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 4, 17, 0, 0, 0, 0, time.UTC), date)

	_, err = SceneDate("plot_a.tif")
	assert.Error(t, err)
}

func TestListScenesSortsByDate(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b_2023-05-01.tif", "a_2023-04-17.TIF", "c_2023-04-20.tiff", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	scenes, err := ListScenes(dir)
	require.NoError(t, err)
	require.Len(t, scenes, 3)
	assert.Equal(t, "a_2023-04-17.TIF", filepath.Base(scenes[0].Path))
	assert.Equal(t, "c_2023-04-20.tiff", filepath.Base(scenes[1].Path))
	assert.Equal(t, "b_2023-05-01.tif", filepath.Base(scenes[2].Path))
}

func TestListScenesEmptyDir(t *testing.T) {
	_, err := ListScenes(t.TempDir())
	assert.Error(t, err)
}
