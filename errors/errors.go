/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"time"
)

// Common sentinel errors
var (
	// ErrMismatch is returned when two result sets are not equivalent
	ErrMismatch = errors.New("result sets are not equivalent")

	// ErrConvergeTimeout is returned when a polled condition did not become true in time
	ErrConvergeTimeout = errors.New("condition did not converge within timeout")

	// ErrPageLimit is returned when a drain exceeds its configured page ceiling
	ErrPageLimit = errors.New("page limit exceeded")

	// ErrInvalidConfig is returned when harness configuration validation fails
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCheckNotFound is returned when no check is registered under a name
	ErrCheckNotFound = errors.New("no check registered for name")
)

// MismatchError reports a failed equivalence comparison between an expected
// and an actual result set.
type MismatchError struct {
	Context      string
	OnlyExpected int
	OnlyActual   int
}

func (e *MismatchError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: result sets differ (%d records only in expected, %d only in actual)",
			e.Context, e.OnlyExpected, e.OnlyActual)
	}
	return fmt.Sprintf("result sets differ (%d records only in expected, %d only in actual)",
		e.OnlyExpected, e.OnlyActual)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

// ConvergeTimeoutError reports a polled condition that stayed false for the
// whole polling budget.
type ConvergeTimeoutError struct {
	Condition string
	Timeout   time.Duration
}

func (e *ConvergeTimeoutError) Error() string {
	return fmt.Sprintf("%s did not converge within %s", e.Condition, e.Timeout)
}

func (e *ConvergeTimeoutError) Is(target error) bool {
	return target == ErrConvergeTimeout
}

// ConfigError represents a harness configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid configuration for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Helper functions for creating errors

// NewMismatchError creates a new MismatchError
func NewMismatchError(context string, onlyExpected, onlyActual int) error {
	return &MismatchError{Context: context, OnlyExpected: onlyExpected, OnlyActual: onlyActual}
}

// NewConvergeTimeoutError creates a new ConvergeTimeoutError
func NewConvergeTimeoutError(condition string, timeout time.Duration) error {
	return &ConvergeTimeoutError{Condition: condition, Timeout: timeout}
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string) error {
	return &ConfigError{Field: field, Message: message}
}

// IsMismatch checks if an error is an equivalence mismatch
func IsMismatch(err error) bool {
	return errors.Is(err, ErrMismatch)
}

// IsConvergeTimeout checks if an error is a convergence timeout
func IsConvergeTimeout(err error) bool {
	return errors.Is(err, ErrConvergeTimeout)
}

// IsInvalidConfig checks if an error is a configuration error
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
