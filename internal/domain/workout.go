package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutItem is one exercise slot within a workout template. Items are
// embedded in their Workout document and never stored on their own.
type WorkoutItem struct {
	ExerciseID   string `bson:"exercise_id,omitempty" json:"exercise_id,omitempty"` // Loose reference, not validated against the library
	ExerciseName string `bson:"exercise_name" json:"exercise_name"`
	Sets         int    `bson:"sets" json:"sets"`                 // 1-20
	Reps         int    `bson:"reps" json:"reps"`                 // 1-100
	RestSeconds  int    `bson:"rest_seconds" json:"rest_seconds"` // 0-600, defaults to 90
}

// Workout is a reusable workout template. Item order is meaningful: it is
// the sequence the exercises are meant to be performed in.
type Workout struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"` // e.g., "Push Day"
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Items       []WorkoutItem      `bson:"items" json:"items"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
