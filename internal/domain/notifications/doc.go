// Package notifications models in-app notifications and the outbound channels that
// carry them: realtime pushes, broker events and mail.
package notifications
