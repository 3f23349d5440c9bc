package engine

import "errors"

// ErrGameOver is returned by Play.Update once a settled piece overlaps the top row
var ErrGameOver = errors.New("game over")
