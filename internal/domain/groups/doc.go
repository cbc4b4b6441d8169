// Package groups models teams and communities and their members.
package groups
