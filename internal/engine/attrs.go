package engine

import "reflect"

// The attribute store is a tagged attachment bag, not a component-query
// engine: one value per Go type per entity, no iteration across entities.
// reflect.Type keys are canonical per type for the process lifetime, so
// there is no collision risk.

// SetAttr attaches v to the entity identified by h, replacing any prior
// value of the same type. Unknown handles (removed or never registered)
// are silently ignored.
func SetAttr[T any](w *World, h Handle, v T) {
	bag, ok := w.attrs[h]
	if !ok {
		return
	}
	bag[reflect.TypeFor[T]()] = &v
}

// Attr returns a mutable pointer to the T previously attached to h. The
// second result is false for unknown handles and unset attributes alike;
// absence is a normal branch, never an error.
func Attr[T any](w *World, h Handle) (*T, bool) {
	bag, ok := w.attrs[h]
	if !ok {
		return nil, false
	}
	p, ok := bag[reflect.TypeFor[T]()].(*T)
	return p, ok
}
