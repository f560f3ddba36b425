package textio

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Text is a rendered value.
type Text struct {
	S string
	// ASCII marks text that is written as-is, skipping code page conversion.
	ASCII bool
}

// Renderer turns one category of values into text. ok is false when the
// renderer does not handle v.
type Renderer interface {
	Render(v any) (t Text, ok bool)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(v any) (Text, bool)

func (f RendererFunc) Render(v any) (Text, bool) { return f(v) }

// Renderers is an ordered renderer set; the first renderer that accepts a
// value wins. Values no renderer accepts fall back to fmt.Sprint.
type Renderers []Renderer

// DefaultRenderers returns the primitive, textual and sequence renderers.
func DefaultRenderers() Renderers {
	return Renderers{PrimitiveRenderer{}, TextRenderer{}, SequenceRenderer{}}
}

// Render renders v with the first matching renderer.
func (rs Renderers) Render(v any) Text {
	for _, r := range rs {
		if t, ok := r.Render(v); ok {
			return t
		}
	}
	return Text{S: fmt.Sprint(v)}
}

// Render renders v with the default renderer set.
func Render(v any) Text {
	return DefaultRenderers().Render(v)
}

// PrimitiveRenderer formats booleans and numbers. Its output is ASCII.
type PrimitiveRenderer struct{}

func (PrimitiveRenderer) Render(v any) (Text, bool) {
	var s string
	switch x := v.(type) {
	case bool:
		s = strconv.FormatBool(x)
	case int:
		s = strconv.FormatInt(int64(x), 10)
	case int8:
		s = strconv.FormatInt(int64(x), 10)
	case int16:
		s = strconv.FormatInt(int64(x), 10)
	case int32:
		s = strconv.FormatInt(int64(x), 10)
	case int64:
		s = strconv.FormatInt(x, 10)
	case uint:
		s = strconv.FormatUint(uint64(x), 10)
	case uint8:
		s = strconv.FormatUint(uint64(x), 10)
	case uint16:
		s = strconv.FormatUint(uint64(x), 10)
	case uint32:
		s = strconv.FormatUint(uint64(x), 10)
	case uint64:
		s = strconv.FormatUint(x, 10)
	case uintptr:
		s = strconv.FormatUint(uint64(x), 10)
	case float32:
		s = strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		s = strconv.FormatFloat(x, 'g', -1, 64)
	case complex64, complex128:
		s = fmt.Sprint(x)
	default:
		return Text{}, false
	}
	return Text{S: s, ASCII: true}, true
}

// TextRenderer handles strings, byte and rune slices, and values that
// describe themselves: errors, fmt.Stringer and encoding.TextMarshaler.
// Its output is assumed to be UTF-8.
type TextRenderer struct{}

func (TextRenderer) Render(v any) (Text, bool) {
	switch x := v.(type) {
	case string:
		return Text{S: x}, true
	case []byte:
		return Text{S: string(x)}, true
	case []rune:
		return Text{S: string(x)}, true
	case error:
		return describe(v, x.Error), true
	case fmt.Stringer:
		return describe(v, x.String), true
	case encoding.TextMarshaler:
		var b []byte
		var err error
		t := describe(v, func() string {
			b, err = x.MarshalText()
			return string(b)
		})
		if err != nil {
			return Text{}, false
		}
		return t, true
	}
	return Text{}, false
}

// describe calls a value's own formatting method. A nil pointer whose method
// panics renders as "<nil>", the way fmt prints it.
func describe(v any, method func() string) (t Text) {
	defer func() {
		if r := recover(); r != nil {
			if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
				t = Text{S: "<nil>"}
				return
			}
			panic(r)
		}
	}()
	return Text{S: method()}
}

// SequenceRenderer renders slices and arrays as "[a b c]", each element
// rendered by Elems (the default set when nil).
type SequenceRenderer struct {
	Elems Renderers
}

func (r SequenceRenderer) Render(v any) (Text, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Text{}, false
	}
	elems := r.Elems
	if elems == nil {
		elems = DefaultRenderers()
	}
	ascii := true
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := 0, rv.Len(); i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		t := elems.Render(rv.Index(i).Interface())
		ascii = ascii && t.ASCII
		sb.WriteString(t.S)
	}
	sb.WriteByte(']')
	return Text{S: sb.String(), ASCII: ascii}, true
}
