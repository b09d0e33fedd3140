package dtype

import (
	"fmt"

	"github.com/robert-malhotra/go-nifti/internal/errs"
)

// Code is a NIfTI datatype code.
type Code int16

// Supported datatype codes.
const (
	Uint8   Code = 2
	Int16   Code = 4
	Int32   Code = 8
	Float32 Code = 16
	Float64 Code = 64
)

type entry struct {
	code    Code
	name    string
	bitpix  int16
	integer bool
}

// table is ordered by code and never modified.
var table = [...]entry{
	{Uint8, "uint8", 8, true},
	{Int16, "int16", 16, true},
	{Int32, "int32", 32, true},
	{Float32, "float32", 32, false},
	{Float64, "float64", 64, false},
}

func find(c Code) (entry, bool) {
	for _, e := range table {
		if e.code == c {
			return e, true
		}
	}
	return entry{}, false
}

func mustFind(c Code) entry {
	e, ok := find(c)
	if !ok {
		panic(unsupported(c))
	}
	return e
}

// Codes returns the supported codes in table order.
func Codes() []Code {
	codes := make([]Code, len(table))
	for i, e := range table {
		codes[i] = e.code
	}
	return codes
}

// Name returns the datatype name of c.
func Name(c Code) string { return mustFind(c).name }

// Bitpix returns the number of bits per element of c.
func Bitpix(c Code) int16 { return mustFind(c).bitpix }

// ElementSize returns the number of bytes per element of c.
func ElementSize(c Code) int { return int(mustFind(c).bitpix) / 8 }

// IsInteger reports whether c is an integer datatype.
func IsInteger(c Code) bool { return mustFind(c).integer }

// String implements fmt.Stringer.
func (c Code) String() string {
	if e, ok := find(c); ok {
		return e.name
	}
	return fmt.Sprintf("Code(%d)", int16(c))
}

// Parse returns the code for a datatype name.
func Parse(name string) (Code, error) {
	for _, e := range table {
		if e.name == name {
			return e.code, nil
		}
	}
	return 0, errs.New(errs.Value, "invalid data type: %s", name)
}

// ParseValue is Parse for an untyped argument. v must be a string or a
// fmt.Stringer.
func ParseValue(v any) (Code, error) {
	switch s := v.(type) {
	case string:
		return Parse(s)
	case fmt.Stringer:
		return Parse(s.String())
	default:
		return 0, errs.New(errs.Type, "data type must be a string, not %T", v)
	}
}

// Lookup validates a datatype code read from a file.
func Lookup(code int16) (Code, error) {
	if _, ok := find(Code(code)); !ok {
		return 0, errs.New(errs.Domain, "invalid or unsupported NIfTI data type code (%d)", code)
	}
	return Code(code), nil
}
