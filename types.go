package bind

import (
	"sort"
	"strconv"
	"strings"
)

type discriminant string // pins the definition of the Value interface to this package

// Value is the type for data carried by context objects, streams and element
// properties. It is a closed set: Bool, Number, String, Object, List and Stream
// are the only implementations.
type Value interface {
	discriminant() discriminant
	Kind() Kind
}

// Kind identifies the concrete category of a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindList
	KindStream
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindObject:
		return "Object"
	case KindList:
		return "List"
	case KindStream:
		return "Stream"
	default:
		return "Invalid"
	}
}

type Bool bool

func (b Bool) discriminant() discriminant { return "reactivebind" }
func (b Bool) Kind() Kind                 { return KindBool }

type Number float64

func (n Number) discriminant() discriminant { return "reactivebind" }
func (n Number) Kind() Kind                 { return KindNumber }

type String string

func (s String) discriminant() discriminant { return "reactivebind" }
func (s String) Kind() Kind                 { return KindString }

// Object is the member-addressable Value context objects are made of. Path
// segments resolve against its keys.
type Object map[string]Value

func (o Object) discriminant() discriminant { return "reactivebind" }
func (o Object) Kind() Kind                 { return KindObject }

func NewObject() Object {
	return Object(make(map[string]Value))
}

func (o Object) Get(key string) (Value, bool) {
	v, ok := o[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (o Object) Set(key string, value Value) Object {
	o[key] = value
	return o
}

type List []Value

func (l List) discriminant() discriminant { return "reactivebind" }
func (l List) Kind() Kind                 { return KindList }

func NewList(val ...Value) List {
	if val != nil {
		return List(val)
	}
	return List(make([]Value, 0))
}

// Equal reports deep equality of two values. A nil Value is only equal to
// another nil Value. Streams compare by identity.
func Equal(v Value, w Value) bool {
	if v == nil || w == nil {
		return v == nil && w == nil
	}
	if v.Kind() != w.Kind() {
		return false
	}
	switch v.Kind() {
	case KindBool, KindNumber, KindString:
		return v == w
	case KindList:
		vl := v.(List)
		wl := w.(List)
		if len(vl) != len(wl) {
			return false
		}
		for i, item := range vl {
			if !Equal(item, wl[i]) {
				return false
			}
		}
		return true
	case KindObject:
		vo := v.(Object)
		wo := w.(Object)
		if len(vo) != len(wo) {
			return false
		}
		for k, val := range vo {
			wal, ok := wo[k]
			if !ok {
				return false
			}
			if !Equal(val, wal) {
				return false
			}
		}
		return true
	default:
		// Streams compare by identity.
		return v == w
	}
}

// Stringify returns the textual form of a value. It is the conversion applied
// when a non-textual stream element is delivered into a String property.
func Stringify(v Value) String {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case String:
		return t
	case Bool:
		return String(strconv.FormatBool(bool(t)))
	case Number:
		return String(strconv.FormatFloat(float64(t), 'g', -1, 64))
	case List:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, string(Stringify(item)))
		}
		return String("[" + strings.Join(parts, ", ") + "]")
	case Object:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+string(Stringify(t[k])))
		}
		return String("{" + strings.Join(parts, ", ") + "}")
	default:
		return String(v.Kind().String())
	}
}
