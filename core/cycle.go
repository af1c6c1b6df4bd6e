package core

import (
	"fmt"
	"reflect"
)

// recursionMarker stands in for a container that is already being dumped
// further up the same path.
type recursionMarker struct{}

func (recursionMarker) String() string { return "*RECURSION*" }

// visit identifies a reference-like value. Slices also carry their length
// so that a sub-slice sharing the backing array is distinct.
type visit struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

func visitOf(rv reflect.Value) visit {
	v := visit{ptr: rv.Pointer(), typ: rv.Type()}
	if rv.Kind() == reflect.Slice {
		v.n = rv.Len()
	}
	return v
}

// refersToItself reports whether v reaches one of its own maps, slices or
// pointers again. Values reached twice without a loop are not cycles.
func refersToItself(v interface{}) bool {
	return hasCycle(reflect.ValueOf(v), map[visit]bool{}, map[visit]bool{})
}

func hasCycle(rv reflect.Value, onPath, done map[visit]bool) bool {
	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return hasCycle(rv.Elem(), onPath, done)
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return false
		}
		k := visitOf(rv)
		if onPath[k] {
			return true
		}
		if done[k] {
			return false
		}
		onPath[k] = true
		defer func() {
			delete(onPath, k)
			done[k] = true
		}()

		switch rv.Kind() {
		case reflect.Ptr:
			return hasCycle(rv.Elem(), onPath, done)
		case reflect.Map:
			iter := rv.MapRange()
			for iter.Next() {
				if hasCycle(iter.Value(), onPath, done) {
					return true
				}
			}
			return false
		default:
			return elementsHaveCycle(rv, onPath, done)
		}
	case reflect.Array:
		return elementsHaveCycle(rv, onPath, done)
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if hasCycle(rv.Field(i), onPath, done) {
				return true
			}
		}
	}
	return false
}

func elementsHaveCycle(rv reflect.Value, onPath, done map[visit]bool) bool {
	for i := 0; i < rv.Len(); i++ {
		if hasCycle(rv.Index(i), onPath, done) {
			return true
		}
	}
	return false
}

// acyclic copies v into plain maps and slices, replacing every reference
// back into the current path with a recursion marker. Map keys become
// their printed form and structs become maps of field names.
func acyclic(rv reflect.Value, path map[visit]bool) interface{} {
	switch rv.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return acyclic(rv.Elem(), path)
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		k := visitOf(rv)
		if path[k] {
			return recursionMarker{}
		}
		path[k] = true
		defer delete(path, k)

		switch rv.Kind() {
		case reflect.Ptr:
			return acyclic(rv.Elem(), path)
		case reflect.Map:
			out := make(map[string]interface{}, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				out[fmt.Sprint(leaf(iter.Key()))] = acyclic(iter.Value(), path)
			}
			return out
		default:
			return acyclicElements(rv, path)
		}
	case reflect.Array:
		return acyclicElements(rv, path)
	case reflect.Struct:
		t := rv.Type()
		out := make(map[string]interface{}, rv.NumField())
		for i := 0; i < rv.NumField(); i++ {
			out[t.Field(i).Name] = acyclic(rv.Field(i), path)
		}
		return out
	default:
		return leaf(rv)
	}
}

func acyclicElements(rv reflect.Value, path map[visit]bool) []interface{} {
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = acyclic(rv.Index(i), path)
	}
	return out
}

// leaf returns a scalar's value, reading unexported fields through their
// kind accessors.
func leaf(rv reflect.Value) interface{} {
	if rv.CanInterface() {
		return rv.Interface()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	default:
		return rv.Type().String()
	}
}
