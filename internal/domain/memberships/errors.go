package memberships

import "errors"

var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrPlanInactive       = errors.New("plan is not available")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrForbidden          = errors.New("membership belongs to another user")
)
