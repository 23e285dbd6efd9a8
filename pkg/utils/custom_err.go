package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrDesignNotFound     = errors.New("design not found")
	ErrTagNotFound        = errors.New("tag not found")
	ErrCatalogTooSmall    = errors.New("catalog needs at least two designs")
	ErrSessionNotFound    = errors.New("quiz session not found")
	ErrSessionComplete    = errors.New("quiz session already complete")
	ErrInvalidChoice      = errors.New("choice is not part of the current pair")
	ErrResultNotFound     = errors.New("result not found")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatasetInvalid     = errors.New("dataset invalid")
)
