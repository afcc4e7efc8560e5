package models

import "fmt"

// RuleBlank is reported when a required field is empty or whitespace only.
const RuleBlank = "blank"

// ValidationError is returned when a record fails a presence check.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	if e.Rule == RuleBlank {
		return fmt.Sprintf("%s can't be blank", e.Field)
	}
	return fmt.Sprintf("%s is invalid: %s", e.Field, e.Rule)
}

// ReferenceError is returned when a foreign key does not resolve.
type ReferenceError struct {
	Field string
	ID    uint
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not reference an existing todo list", e.Field, e.ID)
}
