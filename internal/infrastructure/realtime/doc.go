// Package realtime keeps websocket connections per user and pushes JSON
// frames to them.
package realtime
