// Package calendar models personal calendar entries and entries generated from
// events and scrimmages.
package calendar
