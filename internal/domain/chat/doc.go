// Package chat models message threads between users.
package chat
