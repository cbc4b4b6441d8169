package scrimmages

import "errors"

var (
	ErrScrimmageNotFound   = errors.New("scrimmage not found")
	ErrCategoryNotFound    = errors.New("scrimmage category not found")
	ErrTypeNotFound        = errors.New("scrimmage type not found")
	ErrForbidden           = errors.New("only the creator or staff may change this scrimmage")
	ErrScrimmageFull       = errors.New("scrimmage is full")
	ErrScrimmageCancelled  = errors.New("scrimmage is cancelled")
	ErrNotOnRoster         = errors.New("user is not on the roster")
	ErrCreatorCannotLeave  = errors.New("creator cannot leave their own scrimmage")
	ErrInvalidSchema       = errors.New("invalid custom field schema")
	ErrInvalidCustomFields = errors.New("invalid custom fields")
	ErrPrizesStaffOnly     = errors.New("only staff may distribute prizes")
	ErrSlugTaken           = errors.New("slug already taken")
)
