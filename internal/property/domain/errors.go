package domain

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrOwnerNotFound    = errors.New("owner not found")
	ErrImageNotFound    = errors.New("property image not found")
	ErrInvalidID        = errors.New("invalid id format")
)
