package header

import "errors"

// Header sizes, as stored in sizeof_hdr.
const (
	Size1 = 348
	Size2 = 540
)

// Voxel offsets of single-file datasets without extensions. The 4 bytes
// after the header hold an empty extension flag.
const (
	VoxOffset1 = 352
	VoxOffset2 = 544
)

// Magic continuation bytes (magic[1]).
const (
	MagicSingle = '+' // image data embedded after the header (.nii)
	MagicPair   = 'i' // image data in a separate .img file
)

// xyzt_units codes.
const (
	UnitsUnknown = 0
	UnitsMeter   = 1
	UnitsMM      = 2
	UnitsMicron  = 3
	UnitsSec     = 8
	UnitsMsec    = 16
	UnitsUsec    = 24
)

// SpaceUnitsMask selects the spatial part of xyzt_units.
const SpaceUnitsMask = 0x07

// magic2Tail follows "n?2\0" in a NIfTI-2 magic string.
var magic2Tail = [4]byte{0x0D, 0x0A, 0x1A, 0x0A}

// ErrRange is returned by Narrow when a NIfTI-2 value does not fit the
// corresponding NIfTI-1 field.
var ErrRange = errors.New("header value out of range")
