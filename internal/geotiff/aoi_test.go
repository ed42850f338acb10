package geotiff

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plotsGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"plot_id": "p1"},
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}
    },
    {
      "type": "Feature",
      "properties": {"plot_id": "p2"},
      "geometry": {"type": "Polygon", "coordinates": [[[2,2],[3,2],[3,3],[2,3],[2,2]]]}
    }
  ]
}`

func writePlots(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plots.geojson")
	require.NoError(t, os.WriteFile(path, []byte(plotsGeoJSON), 0644))
	return path
}

func TestLoadAOIByPlotID(t *testing.T) {
	geom, err := LoadAOI(writePlots(t), "p2")
	require.NoError(t, err)

	poly, ok := geom.(orb.Polygon)
	require.True(t, ok)
	assert.Equal(t, orb.Point{2, 2}, poly[0][0])
}

func TestLoadAOIFirstFeatureByDefault(t *testing.T) {
	geom, err := LoadAOI(writePlots(t), "")
	require.NoError(t, err)

	poly, ok := geom.(orb.Polygon)
	require.True(t, ok)
	assert.Equal(t, orb.Point{0, 0}, poly[0][0])
}

func TestLoadAOIUnknownPlot(t *testing.T) {
	_, err := LoadAOI(writePlots(t), "p9")
	assert.Error(t, err)
}
