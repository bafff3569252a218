/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
)

// Renders record as `Type{name: value, arr: [v0 v1]}`.
// Char values are quoted, values which can not be read are rendered as `<err>`.
func Format(r IRecord) string {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	_, _ = bb.WriteString(r.Type().Name())
	_ = bb.WriteByte('{')
	for i, f := range r.Fields() {
		if i > 0 {
			_, _ = bb.WriteString(", ")
		}
		_, _ = bb.WriteString(f.Name())
		_, _ = bb.WriteString(": ")
		if !f.Kind().IsArray() {
			v, err := r.Get(f)
			writeValue(bb, f.Kind(), v, err)
			continue
		}
		_ = bb.WriteByte('[')
		for j := 0; j < f.Len(); j++ {
			if j > 0 {
				_ = bb.WriteByte(' ')
			}
			v, err := r.GetAt(f, j)
			writeValue(bb, f.Kind(), v, err)
		}
		_ = bb.WriteByte(']')
	}
	_ = bb.WriteByte('}')

	return bb.String()
}

func writeValue(bb *bytebufferpool.ByteBuffer, k Kind, v any, err error) {
	if err != nil {
		_, _ = bb.WriteString("<err>")
		return
	}
	if k.Elem() == Kind_Char {
		_, _ = fmt.Fprintf(bb, "%q", v)
		return
	}
	_, _ = fmt.Fprint(bb, v)
}
