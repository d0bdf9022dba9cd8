// Package todos implements the todo resource: validation rules, business
// logic and persistence for per-user task items.
package todos

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/taskhive/taskhive/internal/platform/apierr"
)

// Todo represents a task item owned by a single user.
type Todo struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Input carries the mutable todo fields for create and update. Title bounds
// apply after trimming, so a whitespace-only title fails as missing rather
// than as a length violation.
type Input struct {
	Title       string `json:"title" validate:"required,min=3,max=50"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Normalize trims the title before validation and storage. Description is
// stored as sent; content is treated as an opaque string.
func (in *Input) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
}

// Validate checks the input against the field rules and converts the first
// violation into a BadRequest taxonomy error.
func (in Input) Validate(v *validator.Validate) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apierr.BadRequest("Invalid todo payload")
	}
	switch fieldErrs[0].Tag() {
	case "required":
		return apierr.BadRequest("Title is required")
	case "min":
		return apierr.BadRequest("Title must be at least 3 characters")
	case "max":
		return apierr.BadRequest("Title must be at most 50 characters")
	default:
		return apierr.BadRequest("Invalid todo payload")
	}
}
