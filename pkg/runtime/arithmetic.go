package runtime

import (
	"fmt"
	"math"
)

// Binary arithmetic over same-kind operands. Operands of differing kinds are
// rejected before any payload is touched; the result keeps the common kind.
// Integer addition, subtraction, and multiplication wrap (two's complement),
// and signed MinInt / -1 wraps to MinInt. Integer division by zero returns a
// DivisionByZeroError; floating-point division follows IEEE 754 and never
// errors.

func Add(left, right Value) (Value, error) {
	return apply("+", left, right)
}

func Subtract(left, right Value) (Value, error) {
	return apply("-", left, right)
}

func Multiply(left, right Value) (Value, error) {
	return apply("*", left, right)
}

func Divide(left, right Value) (Value, error) {
	return apply("/", left, right)
}

// Power promotes both operands to float64, applies real exponentiation, and
// casts the result back to the common kind. The cast truncates toward zero
// for integer kinds, so exponentiation is lossy there.
func Power(left, right Value) (Value, error) {
	if left.Kind() != right.Kind() {
		return nil, &TypeMismatchError{Op: "^", Left: left.Kind(), Right: right.Kind()}
	}
	return fromFloat64(left.Kind(), math.Pow(toFloat64(left), toFloat64(right))), nil
}

// FromFloat64 builds a value of the given kind from a float64 payload using
// the same cast rules as Power: truncate toward zero, saturate at the kind's
// bounds, NaN to zero.
func FromFloat64(kind Kind, f float64) Value {
	return fromFloat64(kind, f)
}

func apply(op string, left, right Value) (Value, error) {
	if left.Kind() != right.Kind() {
		return nil, &TypeMismatchError{Op: op, Left: left.Kind(), Right: right.Kind()}
	}
	switch l := left.(type) {
	case U8Value:
		return applyU8(op, l.Val, right.(U8Value).Val)
	case I8Value:
		return applyI8(op, l.Val, right.(I8Value).Val)
	case U16Value:
		return applyU16(op, l.Val, right.(U16Value).Val)
	case I16Value:
		return applyI16(op, l.Val, right.(I16Value).Val)
	case U32Value:
		return applyU32(op, l.Val, right.(U32Value).Val)
	case I32Value:
		return applyI32(op, l.Val, right.(I32Value).Val)
	case U64Value:
		return applyU64(op, l.Val, right.(U64Value).Val)
	case I64Value:
		return applyI64(op, l.Val, right.(I64Value).Val)
	case F32Value:
		return applyF32(op, l.Val, right.(F32Value).Val)
	case F64Value:
		return applyF64(op, l.Val, right.(F64Value).Val)
	}
	return nil, fmt.Errorf("unhandled value kind %s", left.Kind())
}

func applyU8(op string, l, r uint8) (Value, error) {
	switch op {
	case "+":
		return U8Value{Val: l + r}, nil
	case "-":
		return U8Value{Val: l - r}, nil
	case "*":
		return U8Value{Val: l * r}, nil
	case "/":
		if r == 0 {
			return nil, &DivisionByZeroError{Kind: KindU8}
		}
		return U8Value{Val: l / r}, nil
	}
	return nil, fmt.Errorf("unsupported operator %q", op)
}

func applyI8(op string, l, r int8) (Value, error) {
	switch op {
	case "+":
		return I8Value{Val: l + r}, nil
	case "-":
		return I8Value{Val: l - r}, nil
	case "*":
		return I8Value{Val: l * r}, nil
	case "/":
		if r == 0 {
			return nil, &DivisionByZeroError{Kind: KindI8}
		}
		return I8Value{Val: l / r}, nil
	}
	return nil, fmt.Errorf("unsupported operator %q", op)
}

func applyU16(op string, l, r uint16) (Value, error) {
	switch op {
	case "+":
		return U16Value{Val: l + r}, nil
	case "-":
		return U16Value{Val: l - r}, nil
	case "*":
		return U16Value{Val: l * r}, nil
	case "/":
		if r == 0 {
			return nil, &DivisionByZeroError{Kind: KindU16}
		}
		return U16Value{Val: l / r}, nil
	}
	return nil, fmt.Errorf("unsupported operator %q", op)
}

func applyI16(op string, l, r int16) (Value, error) {
	switch op {
	case "+":
		return I16Value{Val: l + r}, nil
	case "-":
		return I16Value{Val: l - r}, nil
	case "*":
		return I16Value{Val: l * r}, nil
	case "/":
		if r == 0 {
			return nil, &DivisionByZeroError{Kind: KindI16}
		}
		return I16Value{Val: l / r}, nil
	}
	return nil, fmt.Errorf("unsupported operator %q", op)
}

func applyU32(op string, l, r uint32) (Value, error) {
	switch op {
	case "+":
		return U32Value{Val: l + r}, nil
	case "-":
		return U32Value{Val: l - r}, nil
	case "*":
		return U32Value{Val: l * r}, nil
	case "/":
		if r == 0 {
			return nil, &DivisionByZeroError{Kind: KindU32}
		}
		return U32Value{Val: l / r}, nil
	}
	return nil, fmt.Errorf("unsupported operator %q", op)
}

func applyI32(op string, l, r int32) (Value, error) {
	switch op {
	case "+":
		return I32Value{Val: l + r}, nil
	case "-":
		return I32Value{Val: l - r}, nil
	case "*":
		return I32Value{Val: l * r}, nil
	case "/":
		if r == 0 {
			return nil, &DivisionByZeroError{Kind: KindI32}
		}
		return I32Value{Val: l / r}, nil
	}
	return nil, fmt.Errorf("unsupported operator %q", op)
}

func applyU64(op string, l, r uint64) (Value, error) {
	switch op {
	case "+":
		return U64Value{Val: l + r}, nil
	case "-":
		return U64Value{Val: l - r}, nil
	case "*":
		return U64Value{Val: l * r}, nil
	case "/":
		if r == 0 {
			return nil, &DivisionByZeroError{Kind: KindU64}
		}
		return U64Value{Val: l / r}, nil
	}
	return nil, fmt.Errorf("unsupported operator %q", op)
}

func applyI64(op string, l, r int64) (Value, error) {
	switch op {
	case "+":
		return I64Value{Val: l + r}, nil
	case "-":
		return I64Value{Val: l - r}, nil
	case "*":
		return I64Value{Val: l * r}, nil
	case "/":
		if r == 0 {
			return nil, &DivisionByZeroError{Kind: KindI64}
		}
		return I64Value{Val: l / r}, nil
	}
	return nil, fmt.Errorf("unsupported operator %q", op)
}

func applyF32(op string, l, r float32) (Value, error) {
	switch op {
	case "+":
		return F32Value{Val: l + r}, nil
	case "-":
		return F32Value{Val: l - r}, nil
	case "*":
		return F32Value{Val: l * r}, nil
	case "/":
		return F32Value{Val: l / r}, nil
	}
	return nil, fmt.Errorf("unsupported operator %q", op)
}

func applyF64(op string, l, r float64) (Value, error) {
	switch op {
	case "+":
		return F64Value{Val: l + r}, nil
	case "-":
		return F64Value{Val: l - r}, nil
	case "*":
		return F64Value{Val: l * r}, nil
	case "/":
		return F64Value{Val: l / r}, nil
	}
	return nil, fmt.Errorf("unsupported operator %q", op)
}

func toFloat64(v Value) float64 {
	switch v := v.(type) {
	case U8Value:
		return float64(v.Val)
	case I8Value:
		return float64(v.Val)
	case U16Value:
		return float64(v.Val)
	case I16Value:
		return float64(v.Val)
	case U32Value:
		return float64(v.Val)
	case I32Value:
		return float64(v.Val)
	case U64Value:
		return float64(v.Val)
	case I64Value:
		return float64(v.Val)
	case F32Value:
		return float64(v.Val)
	case F64Value:
		return v.Val
	}
	panic(fmt.Sprintf("runtime: no float64 conversion for kind %s", v.Kind()))
}

// fromFloat64 casts a float64 result back to kind. Integer casts truncate
// toward zero, saturate at the kind's bounds, and map NaN to zero; Go leaves
// out-of-range float-to-integer conversion unspecified, so the clamp is
// explicit.
func fromFloat64(kind Kind, f float64) Value {
	switch kind {
	case KindU8:
		return U8Value{Val: uint8(clampUint(f, math.MaxUint8))}
	case KindI8:
		return I8Value{Val: int8(clampInt(f, math.MinInt8, math.MaxInt8))}
	case KindU16:
		return U16Value{Val: uint16(clampUint(f, math.MaxUint16))}
	case KindI16:
		return I16Value{Val: int16(clampInt(f, math.MinInt16, math.MaxInt16))}
	case KindU32:
		return U32Value{Val: uint32(clampUint(f, math.MaxUint32))}
	case KindI32:
		return I32Value{Val: int32(clampInt(f, math.MinInt32, math.MaxInt32))}
	case KindU64:
		return U64Value{Val: clampUint(f, math.MaxUint64)}
	case KindI64:
		return I64Value{Val: clampInt(f, math.MinInt64, math.MaxInt64)}
	case KindF32:
		return F32Value{Val: float32(f)}
	case KindF64:
		return F64Value{Val: f}
	}
	panic(fmt.Sprintf("runtime: no conversion to kind %s", kind))
}

func clampInt(f float64, lo, hi int64) int64 {
	if math.IsNaN(f) {
		return 0
	}
	f = math.Trunc(f)
	if f <= float64(lo) {
		return lo
	}
	if f >= float64(hi) {
		return hi
	}
	return int64(f)
}

func clampUint(f float64, hi uint64) uint64 {
	if math.IsNaN(f) {
		return 0
	}
	f = math.Trunc(f)
	if f <= 0 {
		return 0
	}
	if f >= float64(hi) {
		return hi
	}
	return uint64(f)
}
