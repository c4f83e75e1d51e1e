package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single entry in the exercise library. It is a standalone
// reference record: workouts and sessions refer to exercises by display
// name (plus an optional free-form id string), not by an enforced foreign key.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	MuscleGroup string             `bson:"muscle_group,omitempty" json:"muscle_group,omitempty"` // e.g., "Chest", "Legs", "Back"
	Equipment   string             `bson:"equipment,omitempty" json:"equipment,omitempty"`       // e.g., "Barbell", "Bodyweight"
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`               // Form tips
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
