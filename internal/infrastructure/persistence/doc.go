// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer against PostgreSQL or SQLite. Repositories
// validate entities before writing, log changes, and join any transaction
// opened through the Transactor by reading it from the context.
package persistence
