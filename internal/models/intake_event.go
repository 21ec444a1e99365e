package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IntakeEventType string

const (
	EventApplicationSubmitted IntakeEventType = "application_submitted"
	EventFileIngested         IntakeEventType = "file_ingested"
)

// IntakeEvent is an append-only audit record of a successful intake step.
type IntakeEvent struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type          IntakeEventType    `bson:"type" json:"type"`
	ApplicationID string             `bson:"application_id" json:"application_id"`

	FileID         string   `bson:"file_id,omitempty" json:"file_id,omitempty"`
	FileType       FileType `bson:"file_type,omitempty" json:"file_type,omitempty"`
	RequiresReview *bool    `bson:"requires_review,omitempty" json:"requires_review,omitempty"`

	At time.Time `bson:"at" json:"at"`
}
