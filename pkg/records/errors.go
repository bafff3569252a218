/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"errors"
	"fmt"
)

var ErrDuplicateField = errors.New("duplicate field")

var ErrUnsupportedShape = errors.New("unsupported shape")

var ErrFieldNotFound = errors.New("field not found")

var ErrReadOnlyField = errors.New("read-only field")

var ErrIndexOutOfRange = errors.New("index out of range")

var ErrOwnership = errors.New("not an owner")

var ErrUnsupportedOperation = errors.New("unsupported operation")

var ErrFieldTypeMismatch = errors.New("field type mismatch")

var ErrInvalidName = errors.New("invalid name")

func enrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

func errFieldNotFound(f IField, rt *RecordType) error {
	if f == nil || f.desc() == nil {
		return enrichError(ErrFieldNotFound, "nil field in %v", rt)
	}
	return enrichError(ErrFieldNotFound, "field «%v» in %v", f, rt)
}

func errReadOnlyField(f *field) error {
	return enrichError(ErrReadOnlyField, "field «%v»", f)
}

func errIndexOutOfRange(f *field, index, length int) error {
	return enrichError(ErrIndexOutOfRange, "index %d is out of range [0, %d) of field «%v»", index, length, f)
}

func errValueTypeMismatch(f *field, v any) error {
	return enrichError(ErrFieldTypeMismatch, "value type «%T» is not applicable for %s-kind field «%v»", v, f.kind.TrimString(), f)
}

func errKindMismatch(f *field, indexed bool) error {
	if indexed {
		return enrichError(ErrFieldTypeMismatch, "indexed access to %s-kind field «%v»", f.kind.TrimString(), f)
	}
	return enrichError(ErrFieldTypeMismatch, "scalar access to %s-kind field «%v»", f.kind.TrimString(), f)
}
