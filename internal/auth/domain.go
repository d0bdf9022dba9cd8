package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The password hash never leaves the
// service layer; the JSON shape is what login/register responses embed.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
