package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PerformedSet records one completed set within a session item.
type PerformedSet struct {
	SetNumber int      `bson:"set_number" json:"set_number"` // >= 1
	Weight    *float64 `bson:"weight,omitempty" json:"weight,omitempty"` // kg, >= 0
	Reps      int      `bson:"reps" json:"reps"`             // >= 1
	RPE       *float64 `bson:"rpe,omitempty" json:"rpe,omitempty"` // rate of perceived exertion, 1-10
}

// SessionItem is one exercise performed during a logged session, with the
// target prescription and the sets actually completed.
type SessionItem struct {
	ExerciseName  string         `bson:"exercise_name" json:"exercise_name"`
	TargetSets    int            `bson:"target_sets" json:"target_sets"`
	TargetReps    int            `bson:"target_reps" json:"target_reps"`
	PerformedSets []PerformedSet `bson:"performed_sets" json:"performed_sets"`
}

// WorkoutSession is one logged training session. DateStr is kept as an
// opaque YYYY-MM-DD string so the listing filter is plain string equality;
// WorkoutTitle is free text, not a reference to a Workout document.
type WorkoutSession struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DateStr      string             `bson:"date_str" json:"date_str"`
	WorkoutTitle string             `bson:"workout_title" json:"workout_title"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Items        []SessionItem      `bson:"items" json:"items"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"` // Drives newest-first listing
}
