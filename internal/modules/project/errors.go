package project

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("project not found")
	ErrItemNotFound = errors.New("checklist item not found")
	ErrNameTaken    = errors.New("project name already taken")
)
