package models

import "github.com/google/uuid"

const (
	EntityOD        = "od"
	EntityPlacement = "placement"

	OperationCreated = "created"
	OperationUpdated = "updated"
	OperationDeleted = "deleted"
)

// ActivityEvent describes a change to one of a user's records.
type ActivityEvent struct {
	EventID   string    `json:"event_id"`
	UserID    uuid.UUID `json:"user_id"`
	Entity    string    `json:"entity"`
	EntityID  uuid.UUID `json:"entity_id"`
	Operation string    `json:"operation"`
	Timestamp int64     `json:"timestamp"`
}
