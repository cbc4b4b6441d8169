package groups

import "errors"

var (
	ErrGroupNotFound    = errors.New("group not found")
	ErrForbidden        = errors.New("only the owner or staff may change this group")
	ErrOwnerCannotLeave = errors.New("the owner cannot leave the group")
	ErrNotMember        = errors.New("not a member of this group")
	ErrSlugTaken        = errors.New("group slug already taken")
)
