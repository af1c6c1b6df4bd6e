package core

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"reflect"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

// ErrUnsupportedKind is returned by Stringify for values that have no
// textual representation in a log line.
var ErrUnsupportedKind = errors.New("unsupported value kind")

// Kind identifies which member of the Value union is set.
type Kind uint8

const (
	// NullKind is the absence of a value; it is the zero Kind.
	NullKind Kind = iota
	IntKind
	UintKind
	FloatKind
	StringKind
	BoolKind
	ContainerKind
	ResourceKind

	// unsupportedKind marks values Any could not classify.
	unsupportedKind
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case IntKind:
		return "int"
	case UintKind:
		return "uint"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	case BoolKind:
		return "bool"
	case ContainerKind:
		return "container"
	case ResourceKind:
		return "resource"
	default:
		return "unsupported"
	}
}

// Value is a single log argument. Numbers and booleans are stored inline so
// that primitive arguments do not escape to the heap; Container keeps the
// original value for dumping.
type Value struct {
	kind  Kind
	num   int64
	float float64
	str   string
	any   interface{}
}

// Null returns the absent value, rendered as "(null)".
func Null() Value { return Value{} }

// Int creates an integer value
func Int(v int) Value { return Value{kind: IntKind, num: int64(v)} }

// Int64 creates an integer value
func Int64(v int64) Value { return Value{kind: IntKind, num: v} }

// Uint64 creates an unsigned integer value
func Uint64(v uint64) Value { return Value{kind: UintKind, num: int64(v)} }

// Float64 creates a floating-point value
func Float64(v float64) Value { return Value{kind: FloatKind, float: v} }

// String creates a string value
func String(v string) Value { return Value{kind: StringKind, str: v} }

// Bool creates a boolean value
func Bool(v bool) Value {
	var n int64
	if v {
		n = 1
	}
	return Value{kind: BoolKind, num: n}
}

// Container creates a value that is rendered as a nested structural dump.
// A nil container is the null value.
func Container(v interface{}) Value {
	if isNil(v) {
		return Null()
	}
	return Value{kind: ContainerKind, any: v}
}

// Resource creates an opaque handle description, rendered as
// "(resource: <kind> )".
func Resource(kind string) Value { return Value{kind: ResourceKind, str: kind} }

// Kind returns the kind of the value
func (v Value) Kind() Kind { return v.kind }

// Any classifies an arbitrary Go value. Values with no defined rendering
// (channels, functions, complex numbers, unsafe pointers) produce a Value
// that Stringify rejects with ErrUnsupportedKind.
func Any(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int8:
		return Int64(int64(t))
	case int16:
		return Int64(int64(t))
	case int32:
		return Int64(int64(t))
	case int64:
		return Int64(t)
	case uint:
		return Uint64(uint64(t))
	case uint8:
		return Uint64(uint64(t))
	case uint16:
		return Uint64(uint64(t))
	case uint32:
		return Uint64(uint64(t))
	case uint64:
		return Uint64(t)
	case uintptr:
		return Uint64(uint64(t))
	case float32:
		return Float64(float64(t))
	case float64:
		return Float64(t)
	case *os.File:
		if t == nil {
			return Null()
		}
		return Resource("file")
	case net.Conn, net.Listener:
		if isNil(t) {
			return Null()
		}
		return Resource("socket")
	case error:
		if isNil(t) {
			return Null()
		}
		return String(t.Error())
	case fmt.Stringer:
		if isNil(t) {
			return Null()
		}
		return String(t.String())
	case io.Closer:
		if isNil(t) {
			return Null()
		}
		return Resource(reflect.TypeOf(t).String())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return Container(v)
	case reflect.Ptr:
		if rv.IsNil() {
			return Null()
		}
		return Any(rv.Elem().Interface())
	case reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return Any(rv.Elem().Interface())
	}

	// Named primitive types (type Port int, type Name string, ...)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Float64(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	}

	return Value{kind: unsupportedKind, str: rv.Type().String()}
}

// dumper renders containers in a stable, address-free layout so that the
// same data always produces the same text.
var dumper = spew.ConfigState{
	Indent:                  "    ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Stringify returns the display text of v.
func Stringify(v Value) (string, error) {
	switch v.kind {
	case NullKind:
		return "(null)", nil
	case IntKind:
		return strconv.FormatInt(v.num, 10), nil
	case UintKind:
		return strconv.FormatUint(uint64(v.num), 10), nil
	case FloatKind:
		return strconv.FormatFloat(v.float, 'f', -1, 64), nil
	case StringKind:
		return v.str, nil
	case BoolKind:
		return strconv.FormatBool(v.num == 1), nil
	case ContainerKind:
		if refersToItself(v.any) {
			return dumper.Sdump(acyclic(reflect.ValueOf(v.any), map[visit]bool{})), nil
		}
		return dumper.Sdump(v.any), nil
	case ResourceKind:
		return "(resource: " + v.str + " )", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, v.str)
	}
}

// isNil reports whether v is nil or a typed nil pointer, map, slice,
// channel, function or interface.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
