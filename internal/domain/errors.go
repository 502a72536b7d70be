package domain

import "errors"

var (
	ErrModNotFound            = errors.New("mod not found")
	ErrGameNotFound           = errors.New("game not found")
	ErrProfileNotFound        = errors.New("profile not found")
	ErrProfileExists          = errors.New("profile already exists")
	ErrDuplicateName          = errors.New("category name already in use")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrCannotDeleteUnassigned = errors.New("the Unassigned category cannot be deleted")
	ErrUnknownOrderVersion    = errors.New("unknown load-order string version")
	ErrInvalidConfig          = errors.New("invalid configuration")
)
