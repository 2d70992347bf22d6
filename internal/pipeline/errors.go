// Package pipeline defines the error taxonomy shared by the generation and
// dispatch stages. Sentinel markers classify failures so callers can decide
// between aborting generation, blocking dispatch, and surfacing adapter
// faults; scheduling denial is a decision value, never an error.
package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMetadata marks semantic metadata validation failures. Generation
	// aborts before any file is written.
	ErrMetadata = errors.New("metadata error")
	// ErrPrecondition marks fatal generation preconditions: missing input
	// video or an empty derived description.
	ErrPrecondition = errors.New("precondition failure")
	// ErrSchema marks structural post package validation failures. A schema
	// error is a hard dispatch gate.
	ErrSchema = errors.New("schema error")
	// ErrConfiguration marks unusable configuration or missing credentials.
	ErrConfiguration = errors.New("configuration error")
	// ErrLocked marks a dispatch attempt while another dispatch holds the
	// package lock.
	ErrLocked = errors.New("dispatch locked")
	// ErrExternal marks faults raised by platform adapters.
	ErrExternal = errors.New("adapter fault")
)

// Wrap builds an error that includes component context while tagging it with
// the provided marker for later classification. The marker should be one of
// the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExternal
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether the error should stop the current run immediately
// rather than being reported as an accumulated violation list.
func Fatal(err error) bool {
	return errors.Is(err, ErrPrecondition)
}

// ValidationList wraps an accumulated violation list under the given marker.
// The list is rendered one violation per line for operator output.
func ValidationList(marker error, component string, violations []string) error {
	if len(violations) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s: %d violation(s)\n- %s",
		marker, component, len(violations), strings.Join(violations, "\n- "))
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
