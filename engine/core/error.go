package core

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Error taxonomy
// -----------------------------------------------------------------------------

// MisconfiguredError reports a programmer error: a task kind is missing a
// required configuration field or carries an invalid value. It is surfaced
// before any filesystem mutation and must never be retried.
type MisconfiguredError struct {
	Field  string
	Reason string
}

func NewMisconfiguredError(field, reason string) *MisconfiguredError {
	return &MisconfiguredError{Field: field, Reason: reason}
}

func (e *MisconfiguredError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("misconfigured: %s is not set", e.Field)
	}
	return fmt.Sprintf("misconfigured: %s: %s", e.Field, e.Reason)
}

// MissingCapabilityError reports a normalization rule that references a
// substitute the concrete task never implemented. Silent pass-through of the
// raw value would defeat output deduplication, so this fails at normalization
// time instead.
type MissingCapabilityError struct {
	Capability string
}

func NewMissingCapabilityError(capability string) *MissingCapabilityError {
	return &MissingCapabilityError{Capability: capability}
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("missing capability: no substitute implemented for %q", e.Capability)
}

// DependencyUnavailableError reports that a presence-check task reached Run,
// meaning its precondition was false when it was scheduled.
type DependencyUnavailableError struct {
	Name    string
	Message string
}

func NewDependencyUnavailableError(name, message string) *DependencyUnavailableError {
	return &DependencyUnavailableError{Name: name, Message: message}
}

func (e *DependencyUnavailableError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("external dependency %q required but not available", e.Name)
	}
	return fmt.Sprintf("external dependency %q required but not available: %s", e.Name, e.Message)
}

// -----------------------------------------------------------------------------
// Predicates
// -----------------------------------------------------------------------------

func IsMisconfigured(err error) bool {
	var target *MisconfiguredError
	return errors.As(err, &target)
}

func IsMissingCapability(err error) bool {
	var target *MissingCapabilityError
	return errors.As(err, &target)
}

func IsDependencyUnavailable(err error) bool {
	var target *DependencyUnavailableError
	return errors.As(err, &target)
}
