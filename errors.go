// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package damage

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for the damage package.
var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("damage: invalid configuration")

	// ErrInvalidSurface is returned by a Driver that was not created with
	// NewDriver.
	ErrInvalidSurface = errors.New("damage: invalid surface")

	// ErrInvalidAge is matched by every *InvalidAgeError.
	ErrInvalidAge = errors.New("damage: invalid buffer age")

	// ErrPresentFailed wraps the error of a failed present. The frame is
	// dropped and the damage history is left untouched.
	ErrPresentFailed = errors.New("damage: present failed")

	// ErrFrameState is returned when a frame operation is called out of
	// order, for example Present before AcquireFrame.
	ErrFrameState = errors.New("damage: operation not allowed in current frame state")

	// ErrTargetMismatch is returned when Present receives a target other
	// than the one acquired for the frame.
	ErrTargetMismatch = errors.New("damage: target was not acquired for this frame")
)

// ConfigurationError reports missing driver hooks or invalid settings.
type ConfigurationError struct {
	// Missing lists the required hooks that were not supplied.
	Missing []string

	// Reason describes an invalid setting, if any.
	Reason string
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("damage: invalid configuration")
	if len(e.Missing) > 0 {
		b.WriteString(": missing ")
		b.WriteString(strings.Join(e.Missing, ", "))
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

// Is makes errors.Is(err, ErrConfiguration) hold.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// InvalidAgeError reports a negative buffer age.
type InvalidAgeError struct {
	Age int
}

func (e *InvalidAgeError) Error() string {
	return "damage: invalid buffer age " + strconv.Itoa(e.Age)
}

// Is makes errors.Is(err, ErrInvalidAge) hold.
func (e *InvalidAgeError) Is(target error) bool {
	return target == ErrInvalidAge
}
