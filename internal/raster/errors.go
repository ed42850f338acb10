package raster

import "errors"

// ErrBandNotFound is returned by Dataset.Get when no band is stored
// under the requested name.
var ErrBandNotFound = errors.New("band not found in dataset")
