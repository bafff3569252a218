/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"strconv"
	"strings"
)

// Field data kind.
//
// Scalar kinds go first, array kinds follow in the same order,
// so that array kind minus arrayKindShift is the element kind.
//
//go:generate stringer -type=Kind -output=stringer_kind.go
type Kind uint8

const (
	Kind_null Kind = iota

	Kind_Boolean
	Kind_Byte
	Kind_Short
	Kind_Int
	Kind_Long
	Kind_Float
	Kind_Double
	Kind_Char
	Kind_Object

	Kind_BooleanArray
	Kind_ByteArray
	Kind_ShortArray
	Kind_IntArray
	Kind_LongArray
	Kind_FloatArray
	Kind_DoubleArray
	Kind_CharArray
	Kind_ObjectArray

	Kind_FakeLast
)

const arrayKindShift = Kind_BooleanArray - Kind_Boolean

// Returns is kind an array kind
func (k Kind) IsArray() bool {
	return k >= Kind_BooleanArray && k < Kind_FakeLast
}

// Returns is kind an object (reference) kind, scalar or array
func (k Kind) IsObject() bool {
	return k == Kind_Object || k == Kind_ObjectArray
}

// Returns element kind for array kinds and the kind itself for scalar kinds
func (k Kind) Elem() Kind {
	if k.IsArray() {
		return k - arrayKindShift
	}
	return k
}

// Returns array kind for scalar kinds and the kind itself for array kinds
func (k Kind) Array() Kind {
	if k > Kind_null && k < Kind_BooleanArray {
		return k + arrayKindShift
	}
	return k
}

func (k Kind) MarshalText() ([]byte, error) {
	var s string
	if k < Kind_FakeLast {
		s = k.String()
	} else {
		s = strconv.FormatUint(uint64(k), 10)
	}
	return []byte(s), nil
}

// Renders a Kind in human-readable form, without `Kind_` prefix,
// suitable for debugging or error messages
func (k Kind) TrimString() string {
	const pref = "Kind_"
	return strings.TrimPrefix(k.String(), pref)
}
