package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleTrainer Role = "trainer"
	RoleClient  Role = "client"
)

// User represents a user in the system (either a Trainer or a Client).
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role         Role               `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`

	// --- Client-specific training profile ---
	// Level and Goal seed plan generation; Limitations feed exercise
	// selection (matched against exercise contraindications).
	Level       TrainingLevel `bson:"level,omitempty" json:"level,omitempty"`
	Goal        TrainingGoal  `bson:"goal,omitempty" json:"goal,omitempty"`
	Limitations []string      `bson:"limitations,omitempty" json:"limitations,omitempty"`

	// IndividualTolerance scales fatigue scoring for this trainee; zero
	// means unset and is treated as 1.0.
	IndividualTolerance float64 `bson:"individualTolerance,omitempty" json:"individualTolerance,omitempty"`
}

// Helper methods (Optional but can be useful)
func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// Tolerance returns the trainee's fatigue tolerance with the unset default.
func (u *User) Tolerance() float64 {
	if u.IndividualTolerance <= 0 {
		return 1.0
	}
	return u.IndividualTolerance
}
