package dtype

import (
	"errors"
	"math"
	"testing"

	"github.com/robert-malhotra/go-nifti/internal/alloc"
	"github.com/robert-malhotra/go-nifti/internal/errs"
)

func TestTable(t *testing.T) {
	tests := []struct {
		code   Code
		name   string
		bitpix int16
		size   int
	}{
		{Uint8, "uint8", 8, 1},
		{Int16, "int16", 16, 2},
		{Int32, "int32", 32, 4},
		{Float32, "float32", 32, 4},
		{Float64, "float64", 64, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Name(tt.code) != tt.name {
				t.Errorf("Name = %q", Name(tt.code))
			}
			if Bitpix(tt.code) != tt.bitpix {
				t.Errorf("Bitpix = %d", Bitpix(tt.code))
			}
			if ElementSize(tt.code) != tt.size {
				t.Errorf("ElementSize = %d", ElementSize(tt.code))
			}
			code, err := Parse(tt.name)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if code != tt.code {
				t.Errorf("Parse = %d, want %d", code, tt.code)
			}
			if _, err := Lookup(int16(tt.code)); err != nil {
				t.Errorf("Lookup failed: %v", err)
			}
		})
	}
	if len(Codes()) != 5 {
		t.Errorf("Codes() = %v", Codes())
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("int24"); !errors.Is(err, errs.ErrValue) {
		t.Errorf("Parse(int24): expected value error, got %v", err)
	}
	if _, err := ParseValue(16); !errors.Is(err, errs.ErrType) {
		t.Errorf("ParseValue(16): expected type error, got %v", err)
	}
	code, err := ParseValue(Float32)
	if err != nil || code != Float32 {
		t.Errorf("ParseValue(Stringer) = %v, %v", code, err)
	}
	if _, err := Lookup(512); !errors.Is(err, errs.ErrDomain) {
		t.Errorf("Lookup(512): expected domain error, got %v", err)
	}
}

func TestNamePanicsOnUnknownCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Name(Code(3))
}

func TestCastIntegerWraps(t *testing.T) {
	src := AsBytes([]int32{300, -1, 70000, -32769})
	dst, _ := alloc.Bytes(4)
	if err := Cast(dst, Uint8, src, Int32); err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	want := []uint8{44, 255, 112, 255}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("uint8[%d] = %d, want %d", i, dst[i], w)
		}
	}

	dst16, _ := alloc.Bytes(8)
	if err := Cast(dst16, Int16, src, Int32); err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	got := View[int16](dst16)
	want16 := []int16{300, -1, 4464, 32767}
	for i, w := range want16 {
		if got[i] != w {
			t.Errorf("int16[%d] = %d, want %d", i, got[i], w)
		}
	}
}

func TestCastFloatToIntSaturates(t *testing.T) {
	src := AsBytes([]float64{1.9, -1.9, 1e10, -1e10, math.NaN(), 255.5, -0.5})
	dst, _ := alloc.Bytes(7 * 2)
	if err := Cast(dst, Int16, src, Float64); err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	want := []int16{1, -1, 32767, -32768, 0, 255, 0}
	got := View[int16](dst)
	for i, w := range want {
		if got[i] != w {
			t.Errorf("int16[%d] = %d, want %d", i, got[i], w)
		}
	}

	dst8, _ := alloc.Bytes(7)
	if err := Cast(dst8, Uint8, src, Float64); err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	want8 := []uint8{1, 0, 255, 0, 0, 255, 0}
	for i, w := range want8 {
		if dst8[i] != w {
			t.Errorf("uint8[%d] = %d, want %d", i, dst8[i], w)
		}
	}
}

func TestCastWidening(t *testing.T) {
	src := AsBytes([]int16{-7, 0, 1234})
	dst, _ := alloc.Bytes(3 * 8)
	if err := Cast(dst, Float64, src, Int16); err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	got := View[float64](dst)
	for i, w := range []float64{-7, 0, 1234} {
		if got[i] != w {
			t.Errorf("float64[%d] = %v, want %v", i, got[i], w)
		}
	}

	f32, _ := alloc.Bytes(3 * 4)
	if err := Cast(f32, Float32, dst, Float64); err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if View[float32](f32)[2] != 1234 {
		t.Errorf("float32[2] = %v", View[float32](f32)[2])
	}
}

func TestCastLengthMismatch(t *testing.T) {
	if err := Cast(make([]byte, 3), Uint8, make([]byte, 8), Int32); !errors.Is(err, errs.ErrValue) {
		t.Errorf("expected value error, got %v", err)
	}
	if err := Cast(make([]byte, 1), Uint8, make([]byte, 3), Int16); !errors.Is(err, errs.ErrValue) {
		t.Errorf("expected value error for ragged source, got %v", err)
	}
}

func TestGetSet(t *testing.T) {
	for _, c := range Codes() {
		buf, _ := alloc.Bytes(int64(3 * ElementSize(c)))
		Set(buf, c, 1, 42.7)
		got := Get(buf, c, 1)
		want := 42.7
		if IsInteger(c) {
			want = 42
		}
		if c == Float32 {
			want = float64(float32(42.7))
		}
		if got != want {
			t.Errorf("%s: Get = %v, want %v", c, got, want)
		}
		if Get(buf, c, 0) != 0 || Get(buf, c, 2) != 0 {
			t.Errorf("%s: Set touched neighbouring elements", c)
		}

		SetRounded(buf, c, 2, 42.5)
		if IsInteger(c) && Get(buf, c, 2) != 43 {
			t.Errorf("%s: SetRounded = %v, want 43", c, Get(buf, c, 2))
		}
	}
}

func TestFromSlice(t *testing.T) {
	code, buf, err := FromSlice([]float32{1, 2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if code != Float32 || len(buf) != 12 {
		t.Errorf("FromSlice = %v, %d bytes", code, len(buf))
	}
	if View[float32](buf)[2] != 3 {
		t.Error("FromSlice did not copy values")
	}

	src := []uint8{9}
	_, buf, _ = FromSlice(src)
	src[0] = 1
	if buf[0] != 9 {
		t.Error("FromSlice should copy, not alias")
	}

	if _, _, err := FromSlice([]int64{1}); !errors.Is(err, errs.ErrType) {
		t.Errorf("expected type error, got %v", err)
	}
	if _, _, err := FromSlice("abc"); !errors.Is(err, errs.ErrType) {
		t.Errorf("expected type error, got %v", err)
	}
}
