// Package cache keeps short-lived authentication state: sliding-window
// attempt counters and revoked token ids. Redis backs multi-instance
// deployments and an in-process store serves single instances and tests.
package cache
