/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"fmt"
	"strings"
)

// Access strategy used by a record to read and write backing instance storage.
//
//go:generate stringer -type=Mode -output=stringer_mode.go
type Mode uint8

const (
	// Not specified, record type selects default mode by backing shape
	Mode_null Mode = iota

	// Typed closures table synthesized for each wrapped instance.
	// Default mode for bean shapes
	Mode_Generated

	// Raw storage offsets, bean accessors bypassed.
	// Default mode for plain shapes, fails on bean shapes
	Mode_Direct

	// Callables resolved once per field and invoked on every access
	Mode_BoundFunction

	// Accessors looked up by name on every access
	Mode_Reflective

	Mode_FakeLast
)

// Returns all valid modes
func Modes() []Mode {
	return []Mode{Mode_Generated, Mode_Direct, Mode_BoundFunction, Mode_Reflective}
}

// Renders a Mode in human-readable form, without `Mode_` prefix
func (m Mode) TrimString() string {
	const pref = "Mode_"
	return strings.TrimPrefix(m.String(), pref)
}

// Parses mode from string. Both `Mode_Direct` and `Direct` forms are accepted, case insensitive.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if strings.EqualFold(s, m.String()) || strings.EqualFold(s, m.TrimString()) {
			return m, nil
		}
	}
	return Mode_null, fmt.Errorf("unknown mode «%s»: %w", s, ErrUnsupportedOperation)
}
