package debugui

import (
	"fmt"
	"reflect"

	"github.com/plus3/blockfall/engine"
)

var (
	cellsType    = reflect.TypeFor[engine.Cells]()
	stringerType = reflect.TypeFor[fmt.Stringer]()
)

// FieldInfo describes one exported field of an inspected struct. The
// formatter is chosen once, when the type is first seen.
type FieldInfo struct {
	Name  string
	Index int
	// Nested is set for struct-valued fields, shown as tree nodes.
	Nested bool

	format func(reflect.Value) string
}

// Format renders the field of owner as one inspector line.
func (f FieldInfo) Format(owner reflect.Value) string {
	return f.Name + ": " + f.format(owner.Field(f.Index))
}

// FieldCache remembers the field layout of struct types shown in the
// inspector. It is only used from the UI thread.
type FieldCache struct {
	layouts map[reflect.Type][]FieldInfo
}

func NewFieldCache() *FieldCache {
	return &FieldCache{layouts: make(map[reflect.Type][]FieldInfo)}
}

// Fields returns the exported fields of t in declaration order, or nil
// when t is not a struct.
func (c *FieldCache) Fields(t reflect.Type) []FieldInfo {
	if fields, ok := c.layouts[t]; ok {
		return fields
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{
				Name:   field.Name,
				Index:  i,
				Nested: field.Type.Kind() == reflect.Struct && field.Type != cellsType,
				format: formatterFor(field.Type),
			})
		}
	}

	c.layouts[t] = fields
	return fields
}

func formatterFor(t reflect.Type) func(reflect.Value) string {
	switch {
	case t == cellsType:
		return func(v reflect.Value) string {
			cells := v.Interface().(engine.Cells)
			return fmt.Sprintf("0x%04x (%d cells)", uint16(cells), cells.Count())
		}
	case t.Kind() == reflect.Pointer:
		name := t.Elem().Name()
		return func(v reflect.Value) string {
			if v.IsNil() {
				return "nil"
			}
			return name
		}
	case t.Implements(stringerType):
		return func(v reflect.Value) string {
			return v.Interface().(fmt.Stringer).String()
		}
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(v reflect.Value) string { return fmt.Sprintf("%d", v.Int()) }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return func(v reflect.Value) string { return fmt.Sprintf("%d", v.Uint()) }
	case reflect.Float32, reflect.Float64:
		return func(v reflect.Value) string { return fmt.Sprintf("%.3f", v.Float()) }
	case reflect.Bool:
		return func(v reflect.Value) string { return fmt.Sprintf("%t", v.Bool()) }
	case reflect.Slice:
		return func(v reflect.Value) string { return fmt.Sprintf("[%d items]", v.Len()) }
	case reflect.Map:
		return func(v reflect.Value) string { return fmt.Sprintf("map[%d items]", v.Len()) }
	default:
		return func(v reflect.Value) string { return fmt.Sprintf("%v", v.Interface()) }
	}
}

var inspectorFields = NewFieldCache()
