package renderer

import "errors"

var (
	ErrNoBinary    = errors.New("renderer: no renderer binary defined")
	ErrNoArgs      = errors.New("renderer: no frame arguments")
	ErrInterrupted = errors.New("renderer: interrupted while rendering")
)
