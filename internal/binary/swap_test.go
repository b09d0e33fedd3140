package binary

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func TestSwapScalars(t *testing.T) {
	if Swap16(0x0102) != 0x0201 {
		t.Error("Swap16")
	}
	if Swap32(0x01020304) != 0x04030201 {
		t.Error("Swap32")
	}
	if Swap64(0x0102030405060708) != 0x0807060504030201 {
		t.Error("Swap64")
	}
	if SwapInt32(SwapInt32(-348)) != -348 {
		t.Error("SwapInt32 is not an involution")
	}
	if SwapInt16(348) != 0x5C01 {
		t.Errorf("SwapInt16(348) = 0x%04x", SwapInt16(348))
	}
	if SwapInt64(SwapInt64(-544)) != -544 {
		t.Error("SwapInt64 is not an involution")
	}
}

func TestSwapFloatsPreserveBits(t *testing.T) {
	for _, v := range []float32{0, 1, -2.5, float32(math.Inf(1))} {
		if got := SwapFloat32(SwapFloat32(v)); math.Float32bits(got) != math.Float32bits(v) {
			t.Errorf("SwapFloat32 round trip of %v gave %v", v, got)
		}
	}
	for _, v := range []float64{0, 1, -2.5, math.MaxFloat64} {
		if got := SwapFloat64(SwapFloat64(v)); math.Float64bits(got) != math.Float64bits(v) {
			t.Errorf("SwapFloat64 round trip of %v gave %v", v, got)
		}
	}
}

func TestSwapBuffer(t *testing.T) {
	tests := []struct {
		name  string
		width int
		in    []byte
		want  []byte
	}{
		{"width1", 1, []byte{1, 2, 3}, []byte{1, 2, 3}},
		{"width2", 2, []byte{1, 2, 3, 4}, []byte{2, 1, 4, 3}},
		{"width4", 4, []byte{1, 2, 3, 4, 5, 6, 7, 8}, []byte{4, 3, 2, 1, 8, 7, 6, 5}},
		{"width8", 8, []byte{1, 2, 3, 4, 5, 6, 7, 8}, []byte{8, 7, 6, 5, 4, 3, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]byte(nil), tt.in...)
			SwapBuffer(buf, tt.width)
			if !bytes.Equal(buf, tt.want) {
				t.Errorf("SwapBuffer = %v, want %v", buf, tt.want)
			}
		})
	}
}

func TestOrderHelpers(t *testing.T) {
	if !IsLittleEndian(binary.LittleEndian) || IsLittleEndian(binary.BigEndian) {
		t.Error("IsLittleEndian misclassifies fixed orders")
	}
	if IsLittleEndian(Opposite(binary.NativeEndian)) == IsLittleEndian(binary.NativeEndian) {
		t.Error("Opposite returned the same order")
	}
	if OrderName(binary.BigEndian) != "big-endian" {
		t.Error("OrderName")
	}
}
