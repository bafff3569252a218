/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"reflect"
)

// Access strategy bound to single backing instance.
//
// Accessors are called after field, kind, index range and read-only checks,
// the only error they may return is ErrIndexOutOfRange for short slice storages.
type accessor interface {
	get(s *slot) any
	set(s *slot, v any)
	getAt(s *slot, i int) (any, bool)
	setAt(s *slot, i int, v any) bool
}

func (shp *shape) newAccessor(m Mode, inst reflect.Value) (accessor, error) {
	switch m {
	case Mode_Generated:
		return newGeneratedAccessor(shp, inst), nil
	case Mode_Direct:
		if shp.beans {
			return nil, enrichError(ErrUnsupportedShape, "«%v» has bean accessors, %v mode can not be used", shp.typ, m.TrimString())
		}
		return newDirectAccessor(inst), nil
	case Mode_BoundFunction:
		return &boundAccessor{inst: inst}, nil
	case Mode_Reflective:
		return &reflectAccessor{inst: inst}, nil
	}
	return nil, enrichError(ErrUnsupportedOperation, "unknown mode %v", m)
}
