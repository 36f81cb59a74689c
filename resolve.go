// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package damage

// DefaultFallbackAge is the buffer age assumed when the driver cannot
// report one. Virtually no swap chain is deeper than four buffers.
const DefaultFallbackAge = 4

// ResolveExistingDamage returns the region of a back buffer whose content
// is stale, given the buffer age reported for it.
//
// An age of 0 (unknown content) or 1 (previous frame) yields full. For
// larger ages the damage of the age-1 most recent frames is joined,
// starting from the newest entry rather than from full. With no history
// the whole surface is stale.
//
// Negative ages must be rejected with ValidateAge beforehand.
func ResolveExistingDamage(age int, h *History, full Rect) Rect {
	if age <= 1 || h.Len() == 0 {
		return full
	}

	var (
		existing Rect
		seeded   bool
	)
	for r := range h.LastN(age - 1) {
		if !seeded {
			existing, seeded = r, true
			continue
		}
		existing = existing.Join(r)
	}
	return existing
}

// ValidateAge reports an *InvalidAgeError for ages that no driver can
// legitimately produce.
func ValidateAge(age int) error {
	if age < 0 {
		return &InvalidAgeError{Age: age}
	}
	return nil
}
