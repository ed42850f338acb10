package indices

import (
	"sort"

	"github.com/forest-guardian/dea-indices/internal/raster"
)

// formula is one registry entry: the canonical bands it reads and the
// elementwise recipe combining them. Keeping the required band list as
// data lets Calculate report a missing band by name before the recipe
// runs, and keeps dispatch a plain map lookup.
type formula struct {
	description string
	bands       []string
	apply       func(b map[string]raster.Band) raster.Band
}

// registry holds the band recipe for every supported index. Formulas
// read canonical band names only and expect unit-interval reflectance.
var registry = map[string]formula{
	"NDVI": {
		description: "Normalised Difference Vegetation Index, Rouse 1973",
		bands:       []string{"nir", "red"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["nir"].Sub(b["red"]).Div(b["nir"].Add(b["red"]))
		},
	},
	"EVI": {
		description: "Enhanced Vegetation Index, Huete 2002",
		bands:       []string{"nir", "red", "blue"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["nir"].Sub(b["red"]).Scale(2.5).
				Div(b["nir"].Add(b["red"].Scale(6)).Sub(b["blue"].Scale(7.5)).AddScalar(1))
		},
	},
	"LAI": {
		description: "Leaf Area Index, Boegh 2002",
		bands:       []string{"nir", "red", "blue"},
		apply: func(b map[string]raster.Band) raster.Band {
			evi := b["nir"].Sub(b["red"]).Scale(2.5).
				Div(b["nir"].Add(b["red"].Scale(6)).Sub(b["blue"].Scale(7.5)).AddScalar(1))
			return evi.Scale(3.618).AddScalar(-0.118)
		},
	},
	"SAVI": {
		description: "Soil Adjusted Vegetation Index, Huete 1988",
		bands:       []string{"nir", "red"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["nir"].Sub(b["red"]).Scale(1.5).
				Div(b["nir"].Add(b["red"]).AddScalar(0.5))
		},
	},
	"NDMI": {
		description: "Normalised Difference Moisture Index, Gao 1996",
		bands:       []string{"nir", "swir1"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["nir"].Sub(b["swir1"]).Div(b["nir"].Add(b["swir1"]))
		},
	},
	"NBR": {
		description: "Normalised Burn Ratio, Lopez Garcia 1991",
		bands:       []string{"nir", "swir2"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["nir"].Sub(b["swir2"]).Div(b["nir"].Add(b["swir2"]))
		},
	},
	"BAI": {
		description: "Burn Area Index, Martin 1998",
		bands:       []string{"red", "nir"},
		apply: func(b map[string]raster.Band) raster.Band {
			redTerm := b["red"].SubFrom(0.10)
			nirTerm := b["nir"].SubFrom(0.06)
			return redTerm.Mul(redTerm).Add(nirTerm.Mul(nirTerm)).Reciprocal()
		},
	},
	"NDBI": {
		description: "Normalised Difference Built-Up Index, Zha 2003",
		bands:       []string{"swir1", "nir"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["swir1"].Sub(b["nir"]).Div(b["swir1"].Add(b["nir"]))
		},
	},
	"NDSI": {
		description: "Normalised Difference Snow Index, Hall 1995",
		bands:       []string{"green", "swir1"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["green"].Sub(b["swir1"]).Div(b["green"].Add(b["swir1"]))
		},
	},
	"NDWI": {
		description: "Normalised Difference Water Index, McFeeters 1996",
		bands:       []string{"green", "nir"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["green"].Sub(b["nir"]).Div(b["green"].Add(b["nir"]))
		},
	},
	"MNDWI": {
		description: "Modified Normalised Difference Water Index, Xu 2006",
		bands:       []string{"green", "swir1"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["green"].Sub(b["swir1"]).Div(b["green"].Add(b["swir1"]))
		},
	},
	"AWEI_ns": {
		description: "Automated Water Extraction Index (no shadows), Feyisa 2014",
		bands:       []string{"green", "swir1", "nir", "swir2"},
		apply: func(b map[string]raster.Band) raster.Band {
			// Kept faithful to the DEA source, which multiplies the
			// 2.5*nir and 2.75*swir2 terms instead of adding them as
			// the published Feyisa 2014 formula does. Correcting this
			// changes existing products, so it needs a stakeholder
			// decision first.
			return b["green"].Sub(b["swir1"]).Scale(4).
				Sub(b["nir"].Scale(2.5).Mul(b["swir2"].Scale(2.75)))
		},
	},
	"AWEI_sh": {
		description: "Automated Water Extraction Index (shadows), Feyisa 2014",
		bands:       []string{"blue", "green", "nir", "swir1", "swir2"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["blue"].Add(b["green"].Scale(2.5)).
				Sub(b["nir"].Add(b["swir1"]).Scale(1.5)).
				Sub(b["swir2"].Scale(2.5))
		},
	},
	"WI": {
		description: "Water Index, Fisher 2016",
		bands:       []string{"green", "red", "nir", "swir1", "swir2"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["green"].Scale(171).Add(b["red"].Scale(3)).
				Sub(b["nir"].Scale(70)).Sub(b["swir1"].Scale(45)).Sub(b["swir2"].Scale(71)).
				AddScalar(1.7204)
		},
	},
	"TCW": {
		description: "Tasseled Cap Wetness, Crist 1985",
		bands:       []string{"blue", "green", "red", "nir", "swir1", "swir2"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["blue"].Scale(0.0315).Add(b["green"].Scale(0.2021)).
				Add(b["red"].Scale(0.3102)).Add(b["nir"].Scale(0.1594)).
				Add(b["swir1"].Scale(-0.6806)).Add(b["swir2"].Scale(-0.6109))
		},
	},
	"TCG": {
		description: "Tasseled Cap Greenness, Crist 1985",
		bands:       []string{"blue", "green", "red", "nir", "swir1", "swir2"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["blue"].Scale(-0.1603).Add(b["green"].Scale(-0.2819)).
				Add(b["red"].Scale(-0.4934)).Add(b["nir"].Scale(0.7940)).
				Add(b["swir1"].Scale(-0.0002)).Add(b["swir2"].Scale(-0.1446))
		},
	},
	"TCB": {
		description: "Tasseled Cap Brightness, Crist 1985",
		bands:       []string{"blue", "green", "red", "nir", "swir1", "swir2"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["blue"].Scale(0.2043).Add(b["green"].Scale(0.4158)).
				Add(b["red"].Scale(0.5524)).Add(b["nir"].Scale(0.5741)).
				Add(b["swir1"].Scale(0.3124)).Add(b["swir2"].Scale(-0.2303))
		},
	},
	"CMR": {
		description: "Clay Minerals Ratio, Drury 1987",
		bands:       []string{"swir1", "swir2"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["swir1"].Div(b["swir2"])
		},
	},
	"FMR": {
		description: "Ferrous Minerals Ratio, Segal 1982",
		bands:       []string{"swir1", "nir"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["swir1"].Div(b["nir"])
		},
	},
	"IOR": {
		description: "Iron Oxide Ratio, Segal 1982",
		bands:       []string{"red", "blue"},
		apply: func(b map[string]raster.Band) raster.Band {
			return b["red"].Div(b["blue"])
		},
	},
}

// Indices returns the supported index codes, sorted.
func Indices() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Describe returns the reference description of an index code, or the
// empty string for unknown codes.
func Describe(code string) string {
	return registry[code].description
}
