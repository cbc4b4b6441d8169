// Package models contains GORM database models for the infrastructure layer.
// Each model maps to one table and converts to and from its domain entity, so
// domain packages never import gorm.
package models
