/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import "reflect"

// Calls callables resolved once per shape, see slot.bind()
type boundAccessor struct {
	inst reflect.Value
}

func (a *boundAccessor) get(s *slot) any { return s.boundGet(a.inst) }

func (a *boundAccessor) set(s *slot, v any) { s.boundSet(a.inst, v) }

func (a *boundAccessor) getAt(s *slot, i int) (any, bool) { return s.boundGetAt(a.inst, i) }

func (a *boundAccessor) setAt(s *slot, i int, v any) bool { return s.boundSetAt(a.inst, i, v) }
