package schema

import (
	"time"
)

const (
	UserCollection = "users"
)

// User - a campus member. Anyone can both ask for help and be ranked
// as a helper; the tag set is the only profile field matching reads.
type User struct {
	ID           string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Name         string    `json:"name" bson:"name"`
	Bio          string    `json:"bio,omitempty" bson:"bio,omitempty"`
	Tags         []string  `json:"tags" bson:"tags"`
	Timezone     string    `json:"timezone,omitempty" bson:"timezone,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
