// Package events models hosted events with capacity-limited RSVPs and a waitlist.
package events
