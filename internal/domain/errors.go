package domain

import "errors"

var (
	ErrEmptyQuery         = errors.New("query must not be empty")
	ErrLocationNotFound   = errors.New("location not found")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
