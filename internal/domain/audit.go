package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityType identifies the kind of domain entity (used in audit records).
type EntityType string

const (
	EntityTypeCategory      EntityType = "CATEGORY"
	EntityTypeQualification EntityType = "QUALIFICATION"
	EntityTypeQuestion      EntityType = "QUESTION"
)

func (e EntityType) String() string { return string(e) }

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

// AuditRecord is an append-only entry describing a single entity mutation.
// Changes holds a free-form old/new snapshot of the fields that changed.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
