package header

import nbinary "github.com/robert-malhotra/go-nifti/internal/binary"

// fieldReader decodes header fields in sequence and keeps the first error.
type fieldReader struct {
	r   *nbinary.Reader
	err error
}

func (f *fieldReader) raw(dst []byte) {
	if f.err == nil {
		f.err = f.r.ReadInto(dst)
	}
}

func (f *fieldReader) u8(p *uint8) {
	if f.err == nil {
		*p, f.err = f.r.ReadUint8()
	}
}

func (f *fieldReader) i16(p *int16) {
	if f.err == nil {
		*p, f.err = f.r.ReadInt16()
	}
}

func (f *fieldReader) i32(p *int32) {
	if f.err == nil {
		*p, f.err = f.r.ReadInt32()
	}
}

func (f *fieldReader) i64(p *int64) {
	if f.err == nil {
		*p, f.err = f.r.ReadInt64()
	}
}

func (f *fieldReader) f32(p *float32) {
	if f.err == nil {
		*p, f.err = f.r.ReadFloat32()
	}
}

func (f *fieldReader) f64(p *float64) {
	if f.err == nil {
		*p, f.err = f.r.ReadFloat64()
	}
}

// fieldWriter is the encoding counterpart of fieldReader.
type fieldWriter struct {
	w   *nbinary.Writer
	err error
}

func (f *fieldWriter) raw(b []byte) {
	if f.err == nil {
		f.err = f.w.WriteBytes(b)
	}
}

func (f *fieldWriter) u8(v uint8) {
	if f.err == nil {
		f.err = f.w.WriteUint8(v)
	}
}

func (f *fieldWriter) i16(v int16) {
	if f.err == nil {
		f.err = f.w.WriteInt16(v)
	}
}

func (f *fieldWriter) i32(v int32) {
	if f.err == nil {
		f.err = f.w.WriteInt32(v)
	}
}

func (f *fieldWriter) i64(v int64) {
	if f.err == nil {
		f.err = f.w.WriteInt64(v)
	}
}

func (f *fieldWriter) f32(v float32) {
	if f.err == nil {
		f.err = f.w.WriteFloat32(v)
	}
}

func (f *fieldWriter) f64(v float64) {
	if f.err == nil {
		f.err = f.w.WriteFloat64(v)
	}
}
