package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EventTypeUsage = "usage"

type ActivityEvent struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	ItemID    primitive.ObjectID `json:"agent_id" bson:"agent_id"`
	EventType string             `json:"event_type" bson:"event_type"`
	Timestamp time.Time          `json:"created_at" bson:"created_at"`
}
