package profiles

import "errors"

var (
	ErrProfileHidden = errors.New("profile is not visible")
	ErrSelfFollow    = errors.New("cannot follow yourself")
	ErrUserNotFound  = errors.New("user not found")
)
