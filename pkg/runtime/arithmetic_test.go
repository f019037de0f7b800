package runtime

import (
	"errors"
	"math"
	"testing"
)

func TestAddKeepsKind(t *testing.T) {
	got, err := Add(F64Value{Val: 1}, F64Value{Val: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	f, ok := got.(F64Value)
	if !ok || f.Val != 2 {
		t.Fatalf("unexpected result %#v", got)
	}
}

func TestMixedKindsRejected(t *testing.T) {
	_, err := Add(U64Value{Val: 1}, F64Value{Val: 1})
	if err == nil {
		t.Fatalf("expected type mismatch")
	}
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("unexpected error type: %v", err)
	}
	if mismatch.Left != KindU64 || mismatch.Right != KindF64 || mismatch.Op != "+" {
		t.Fatalf("unexpected mismatch details %#v", mismatch)
	}
	if want := "Types u64 and f64 are not the same"; err.Error() != want {
		t.Fatalf("unexpected message %q, want %q", err.Error(), want)
	}
}

func TestIntegerArithmeticWraps(t *testing.T) {
	cases := []struct {
		name  string
		op    func(Value, Value) (Value, error)
		left  Value
		right Value
		want  Value
	}{
		{"u8 add wraps", Add, U8Value{Val: 255}, U8Value{Val: 1}, U8Value{Val: 0}},
		{"i8 sub wraps", Subtract, I8Value{Val: -128}, I8Value{Val: 1}, I8Value{Val: 127}},
		{"u16 mul wraps", Multiply, U16Value{Val: 60000}, U16Value{Val: 2}, U16Value{Val: 54464}},
		{"i64 min negate wraps", Divide, I64Value{Val: math.MinInt64}, I64Value{Val: -1}, I64Value{Val: math.MinInt64}},
		{"u64 add wraps", Add, U64Value{Val: math.MaxUint64}, U64Value{Val: 2}, U64Value{Val: 1}},
	}
	for _, tc := range cases {
		got, err := tc.op(tc.left, tc.right)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %#v, want %#v", tc.name, got, tc.want)
		}
	}
}

func TestIntegerDivisionTruncates(t *testing.T) {
	got, err := Divide(I32Value{Val: -7}, I32Value{Val: 2})
	if err != nil {
		t.Fatalf("divide failed: %v", err)
	}
	if got != (I32Value{Val: -3}) {
		t.Fatalf("unexpected quotient %#v", got)
	}
}

func TestIntegerDivisionByZero(t *testing.T) {
	for _, tc := range []struct {
		left, right Value
		kind        Kind
	}{
		{U8Value{Val: 1}, U8Value{Val: 0}, KindU8},
		{I32Value{Val: 1}, I32Value{Val: 0}, KindI32},
		{U64Value{Val: 1}, U64Value{Val: 0}, KindU64},
	} {
		_, err := Divide(tc.left, tc.right)
		var divErr *DivisionByZeroError
		if !errors.As(err, &divErr) {
			t.Fatalf("%s: unexpected error %v", tc.kind, err)
		}
		if divErr.Kind != tc.kind {
			t.Fatalf("unexpected kind in %#v, want %s", divErr, tc.kind)
		}
	}
}

func TestFloatDivisionNeverErrors(t *testing.T) {
	inf, err := Divide(F64Value{Val: 1}, F64Value{Val: 0})
	if err != nil {
		t.Fatalf("float division errored: %v", err)
	}
	if f := inf.(F64Value); !math.IsInf(f.Val, 1) {
		t.Fatalf("1/0 = %#v, want +Inf", inf)
	}

	nan, err := Divide(F64Value{Val: 0}, F64Value{Val: 0})
	if err != nil {
		t.Fatalf("float division errored: %v", err)
	}
	if f := nan.(F64Value); !math.IsNaN(f.Val) {
		t.Fatalf("0/0 = %#v, want NaN", nan)
	}
}

func TestPowerKeepsKind(t *testing.T) {
	got, err := Power(F64Value{Val: 2}, F64Value{Val: 10})
	if err != nil {
		t.Fatalf("power failed: %v", err)
	}
	if got != (F64Value{Val: 1024}) {
		t.Fatalf("unexpected result %#v", got)
	}

	got, err = Power(U64Value{Val: 5}, U64Value{Val: 2})
	if err != nil {
		t.Fatalf("power failed: %v", err)
	}
	if got != (U64Value{Val: 25}) {
		t.Fatalf("unexpected result %#v", got)
	}
}

func TestPowerTruncatesIntegerResults(t *testing.T) {
	// 2^-1 = 0.5 truncates toward zero.
	got, err := Power(I64Value{Val: 2}, I64Value{Val: -1})
	if err != nil {
		t.Fatalf("power failed: %v", err)
	}
	if got != (I64Value{Val: 0}) {
		t.Fatalf("unexpected result %#v", got)
	}
}

func TestPowerSaturatesAtKindBounds(t *testing.T) {
	got, err := Power(U8Value{Val: 16}, U8Value{Val: 3})
	if err != nil {
		t.Fatalf("power failed: %v", err)
	}
	if got != (U8Value{Val: 255}) {
		t.Fatalf("4096 in u8 = %#v, want 255", got)
	}

	got, err = Power(I8Value{Val: -6}, I8Value{Val: 5})
	if err != nil {
		t.Fatalf("power failed: %v", err)
	}
	if got != (I8Value{Val: -128}) {
		t.Fatalf("-7776 in i8 = %#v, want -128", got)
	}

	// 0^-1 = +Inf saturates high.
	got, err = Power(I8Value{Val: 0}, I8Value{Val: -1})
	if err != nil {
		t.Fatalf("power failed: %v", err)
	}
	if got != (I8Value{Val: 127}) {
		t.Fatalf("unexpected result %#v", got)
	}
}

func TestPowerMismatchRejected(t *testing.T) {
	_, err := Power(F32Value{Val: 2}, F64Value{Val: 2})
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("unexpected error %v", err)
	}
	if mismatch.Op != "^" {
		t.Fatalf("unexpected operator %q", mismatch.Op)
	}
}

func TestClampBounds(t *testing.T) {
	if got := clampInt(math.NaN(), math.MinInt8, math.MaxInt8); got != 0 {
		t.Fatalf("NaN clamped to %d, want 0", got)
	}
	if got := clampInt(-1000, math.MinInt8, math.MaxInt8); got != -128 {
		t.Fatalf("underflow clamped to %d, want -128", got)
	}
	if got := clampInt(3.9, math.MinInt8, math.MaxInt8); got != 3 {
		t.Fatalf("3.9 truncated to %d, want 3", got)
	}
	if got := clampUint(-3.5, math.MaxUint8); got != 0 {
		t.Fatalf("negative clamped to %d, want 0", got)
	}
	if got := clampUint(math.Inf(1), math.MaxUint64); got != math.MaxUint64 {
		t.Fatalf("+Inf clamped to %d", got)
	}
}
