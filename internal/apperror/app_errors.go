package apperror

import "errors"

var (
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrUnknownFrontend = errors.New("unknown frontend")
	ErrGUIUnavailable  = errors.New("desktop frontend requires building with the 'ebiten' tag")
	ErrInvalidConfig   = errors.New("invalid config")
)
