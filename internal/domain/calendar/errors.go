package calendar

import "errors"

var (
	ErrItemNotFound  = errors.New("calendar item not found")
	ErrForbidden     = errors.New("calendar item belongs to another user")
	ErrInvalidWindow = errors.New("feed window end must be after start")
)
