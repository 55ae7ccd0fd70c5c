package history

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidationError indicates rejected analyzer input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// NotFoundError indicates the requested record is not in the history.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("analysis not found: %s", e.ID)
}

// SkillNotFoundError indicates a toggle referenced a skill the record
// never extracted.
type SkillNotFoundError struct {
	ID    uuid.UUID
	Skill string
}

func (e *SkillNotFoundError) Error() string {
	return fmt.Sprintf("skill %q not found on analysis %s", e.Skill, e.ID)
}

// CorruptionError indicates the stored history blob could not be parsed.
// Callers treat the history as empty and continue; the next successful
// save rewrites the blob.
type CorruptionError struct {
	Cause error
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("stored history is unreadable: %v", e.Cause)
}

func (e *CorruptionError) Unwrap() error {
	return e.Cause
}
