package model

import "errors"

var (
	ErrInvalidRecurrence = errors.New("invalid recurrence")
	ErrInvalidView       = errors.New("invalid calendar view")
	ErrInvalidDate       = errors.New("invalid calendar date")
)
