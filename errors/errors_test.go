/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestMismatchError(t *testing.T) {
	err := NewMismatchError("full scan", 2, 1)

	// Test error message
	expected := "full scan: result sets differ (2 records only in expected, 1 only in actual)"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrMismatch) {
		t.Error("MismatchError should match ErrMismatch")
	}

	// Test helper function
	if !IsMismatch(err) {
		t.Error("IsMismatch should return true for MismatchError")
	}
}

func TestMismatchErrorWithoutContext(t *testing.T) {
	err := NewMismatchError("", 0, 3)

	expected := "result sets differ (0 records only in expected, 3 only in actual)"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
}

func TestConvergeTimeoutError(t *testing.T) {
	err := NewConvergeTimeoutError(`GSI "statusIndex" on table "threads"`, 60*time.Second)

	// Test error message
	expected := `GSI "statusIndex" on table "threads" did not converge within 1m0s`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrConvergeTimeout) {
		t.Error("ConvergeTimeoutError should match ErrConvergeTimeout")
	}

	// Test helper function
	if !IsConvergeTimeout(err) {
		t.Error("IsConvergeTimeout should return true for ConvergeTimeoutError")
	}
}

func TestConfigError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "endpoint",
			message:  "must be a URL",
			expected: `invalid configuration for field "endpoint": must be a URL`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "invalid configuration: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfigError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidConfig) {
				t.Error("ConfigError should match ErrInvalidConfig")
			}

			if !IsInvalidConfig(err) {
				t.Error("IsInvalidConfig should return true for ConfigError")
			}
		})
	}
}

func TestSentinelWrapping(t *testing.T) {
	// Sentinels must survive fmt.Errorf wrapping, since call sites add context
	wrapped := fmt.Errorf("drain aborted: %w", ErrPageLimit)
	if !errors.Is(wrapped, ErrPageLimit) {
		t.Error("wrapped ErrPageLimit should match ErrPageLimit")
	}

	wrapped = fmt.Errorf("check %q: %w", "scan.full", ErrCheckNotFound)
	if !errors.Is(wrapped, ErrCheckNotFound) {
		t.Error("wrapped ErrCheckNotFound should match ErrCheckNotFound")
	}
}
