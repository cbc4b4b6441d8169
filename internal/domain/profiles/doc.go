// Package profiles models public user profiles and follower relationships.
package profiles
