// Package messaging publishes and consumes domain events over RabbitMQ topic
// exchanges or NATS subjects. Payloads are JSON.
package messaging
