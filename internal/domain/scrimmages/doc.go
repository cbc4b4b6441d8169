// Package scrimmages models pick-up games, their rosters and the typed custom
// fields each scrimmage type asks for.
package scrimmages
