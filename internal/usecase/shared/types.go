package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClientSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type RoomSnapshot struct {
	ID           uuid.UUID
	Number       string
	RoomType     string
	Capacity     int
	NightlyPrice decimal.Decimal
	Status       string
}

type OutboxStatus string

const (
	OutboxQueued    OutboxStatus = "queued"
	OutboxPublished OutboxStatus = "published"
	OutboxFailed    OutboxStatus = "failed"
)

// OutboxMessage is a domain event written in the same transaction as the
// state change it describes.
type OutboxMessage struct {
	ID          uuid.UUID
	Topic       string
	AggregateID uuid.UUID
	Payload     []byte
	Status      OutboxStatus
	Attempts    int
	RunAt       time.Time
	CreatedAt   time.Time
}
