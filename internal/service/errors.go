// Package service implements the application operations on top of the
// repositories: validation, the promote flow, analytics, import/export and
// view-cache invalidation.
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"anshin-house-data/internal/repository"
)

// Free-text length ceilings. Oversized input is a validation failure, not a
// silent truncation.
const (
	maxNoteLen = 5000
	maxTextLen = 2000
)

// ValidationError carries the full list of human-readable problems; the
// HTTP layer joins them into one message for the client.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "\n")
}

// IsValidation reports whether err is a validation failure (HTTP 400).
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err means the keyed record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

// validator accumulates problems across a request's fields.
type validator struct {
	problems []string
}

func (v *validator) addf(msg string) {
	v.problems = append(v.problems, msg)
}

// requireUUID rejects malformed identifiers before they reach the storage
// layer, so an id typo reads as a 400 rather than an empty not-found.
func (v *validator) requireUUID(field, id string) {
	if id == "" {
		v.addf(field + "は必須です")
		return
	}
	if _, err := uuid.Parse(id); err != nil {
		v.addf(field + "の形式が不正です")
	}
}

func (v *validator) optionalUUID(field string, id *string) {
	if id == nil || *id == "" {
		return
	}
	if _, err := uuid.Parse(*id); err != nil {
		v.addf(field + "の形式が不正です")
	}
}

func (v *validator) maxLen(field, value string, max int) {
	if len([]rune(value)) > max {
		v.addf(field + "が長すぎます")
	}
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: v.problems}
}
