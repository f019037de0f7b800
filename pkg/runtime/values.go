package runtime

import "strconv"

// Kind identifies a value's numeric representation.
type Kind int

const (
	KindU8 Kind = iota
	KindI8
	KindU16
	KindI16
	KindU32
	KindI32
	KindU64
	KindI64
	KindF32
	KindF64
)

func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindI8:
		return "i8"
	case KindU16:
		return "u16"
	case KindI16:
		return "i16"
	case KindU32:
		return "u32"
	case KindI32:
		return "i32"
	case KindU64:
		return "u64"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	}
	return "unknown"
}

// KindFromName maps a source-level kind name ("u8" .. "f64") to its tag.
func KindFromName(name string) (Kind, bool) {
	switch name {
	case "u8":
		return KindU8, true
	case "i8":
		return KindI8, true
	case "u16":
		return KindU16, true
	case "i16":
		return KindI16, true
	case "u32":
		return KindU32, true
	case "i32":
		return KindI32, true
	case "u64":
		return KindU64, true
	case "i64":
		return KindI64, true
	case "f32":
		return KindF32, true
	case "f64":
		return KindF64, true
	}
	return 0, false
}

// KindNames lists every kind name the language accepts, in declaration order.
var KindNames = []string{"u8", "i8", "u16", "i16", "u32", "i32", "u64", "i64", "f32", "f64"}

// Value is the shared behaviour for all runtime values. A value's payload is
// only ever read through its own variant type; operations switch on Kind and
// never reinterpret one payload as another.
type Value interface {
	Kind() Kind
	String() string
}

type U8Value struct {
	Val uint8
}

func (v U8Value) Kind() Kind     { return KindU8 }
func (v U8Value) String() string { return strconv.FormatUint(uint64(v.Val), 10) }

type I8Value struct {
	Val int8
}

func (v I8Value) Kind() Kind     { return KindI8 }
func (v I8Value) String() string { return strconv.FormatInt(int64(v.Val), 10) }

type U16Value struct {
	Val uint16
}

func (v U16Value) Kind() Kind     { return KindU16 }
func (v U16Value) String() string { return strconv.FormatUint(uint64(v.Val), 10) }

type I16Value struct {
	Val int16
}

func (v I16Value) Kind() Kind     { return KindI16 }
func (v I16Value) String() string { return strconv.FormatInt(int64(v.Val), 10) }

type U32Value struct {
	Val uint32
}

func (v U32Value) Kind() Kind     { return KindU32 }
func (v U32Value) String() string { return strconv.FormatUint(uint64(v.Val), 10) }

type I32Value struct {
	Val int32
}

func (v I32Value) Kind() Kind     { return KindI32 }
func (v I32Value) String() string { return strconv.FormatInt(int64(v.Val), 10) }

type U64Value struct {
	Val uint64
}

func (v U64Value) Kind() Kind     { return KindU64 }
func (v U64Value) String() string { return strconv.FormatUint(v.Val, 10) }

type I64Value struct {
	Val int64
}

func (v I64Value) Kind() Kind     { return KindI64 }
func (v I64Value) String() string { return strconv.FormatInt(v.Val, 10) }

type F32Value struct {
	Val float32
}

func (v F32Value) Kind() Kind     { return KindF32 }
func (v F32Value) String() string { return strconv.FormatFloat(float64(v.Val), 'g', -1, 32) }

type F64Value struct {
	Val float64
}

func (v F64Value) Kind() Kind     { return KindF64 }
func (v F64Value) String() string { return strconv.FormatFloat(v.Val, 'g', -1, 64) }
