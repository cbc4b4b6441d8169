package events

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrForbidden      = errors.New("only the host or staff may change this event")
	ErrEventCancelled = errors.New("event is cancelled")
	ErrNoRSVP         = errors.New("no RSVP for this event")
	ErrInvalidRSVP    = errors.New("invalid RSVP status")
)
