package binary

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
)

// Swap16 reverses the byte order of a 16-bit value.
func Swap16(x uint16) uint16 { return bits.ReverseBytes16(x) }

// Swap32 reverses the byte order of a 32-bit value.
func Swap32(x uint32) uint32 { return bits.ReverseBytes32(x) }

// Swap64 reverses the byte order of a 64-bit value.
func Swap64(x uint64) uint64 { return bits.ReverseBytes64(x) }

// SwapInt16 reverses the byte order of a signed 16-bit value.
func SwapInt16(x int16) int16 { return int16(Swap16(uint16(x))) }

// SwapInt32 reverses the byte order of a signed 32-bit value.
func SwapInt32(x int32) int32 { return int32(Swap32(uint32(x))) }

// SwapInt64 reverses the byte order of a signed 64-bit value.
func SwapInt64(x int64) int64 { return int64(Swap64(uint64(x))) }

// SwapFloat32 reverses the byte order of a float32 through its bit pattern.
// The result may be any bit pattern, including a NaN.
func SwapFloat32(x float32) float32 {
	return math.Float32frombits(Swap32(math.Float32bits(x)))
}

// SwapFloat64 reverses the byte order of a float64 through its bit pattern.
func SwapFloat64(x float64) float64 {
	return math.Float64frombits(Swap64(math.Float64bits(x)))
}

// SwapBuffer reverses the byte order of every width-byte element of buf in
// place. Width 1 is a no-op. len(buf) must be a multiple of width.
func SwapBuffer(buf []byte, width int) {
	switch width {
	case 1:
	case 2:
		for i := 0; i+1 < len(buf); i += 2 {
			buf[i], buf[i+1] = buf[i+1], buf[i]
		}
	case 4:
		for i := 0; i+3 < len(buf); i += 4 {
			v := binary.LittleEndian.Uint32(buf[i:])
			binary.BigEndian.PutUint32(buf[i:], v)
		}
	case 8:
		for i := 0; i+7 < len(buf); i += 8 {
			v := binary.LittleEndian.Uint64(buf[i:])
			binary.BigEndian.PutUint64(buf[i:], v)
		}
	default:
		panic(fmt.Sprintf("binary: unsupported swap width %d", width))
	}
}

// Opposite returns the byte order opposite to order.
func Opposite(order binary.ByteOrder) binary.ByteOrder {
	if IsLittleEndian(order) {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// IsLittleEndian reports whether order is little-endian. This works for
// binary.NativeEndian as well.
func IsLittleEndian(order binary.ByteOrder) bool {
	var buf [2]byte
	order.PutUint16(buf[:], 0x0102)
	return buf[0] == 0x02
}

// OrderName returns "little-endian" or "big-endian".
func OrderName(order binary.ByteOrder) string {
	if IsLittleEndian(order) {
		return "little-endian"
	}
	return "big-endian"
}
