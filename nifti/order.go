package nifti

import (
	"fmt"

	"github.com/robert-malhotra/go-nifti/internal/alloc"
	"github.com/robert-malhotra/go-nifti/internal/errs"
	"github.com/robert-malhotra/go-nifti/internal/transpose"
)

// Order is the storage order of a dataset's voxel buffer. Names list the
// axes from slowest to fastest varying.
type Order int

const (
	// TKJI stores each volume contiguously. This is the on-disk order.
	TKJI Order = iota
	// KJIT stores each voxel's time series contiguously.
	KJIT
)

var orderNames = [...]string{TKJI: "tkji", KJIT: "kjit"}

func (o Order) String() string {
	if o >= 0 && int(o) < len(orderNames) {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder returns the order named "tkji" or "kjit".
func ParseOrder(name string) (Order, error) {
	for i, n := range orderNames {
		if n == name {
			return Order(i), nil
		}
	}
	return 0, errs.New(errs.Value, "invalid memory order: %s", name)
}

// ParseOrderValue is ParseOrder for an untyped argument, which must be a
// string or a fmt.Stringer.
func ParseOrderValue(v any) (Order, error) {
	switch s := v.(type) {
	case string:
		return ParseOrder(s)
	case fmt.Stringer:
		return ParseOrder(s.String())
	default:
		return 0, errs.New(errs.Type, "memory order must be a string, not %T", v)
	}
}

// SetOrder rearranges the voxel buffer into order o in place. The buffer
// keeps its address; only its contents and the shape change.
func (d *Dataset) SetOrder(o Order) error {
	if o != TKJI && o != KJIT {
		return errs.New(errs.Value, "invalid memory order: %v", o).WithOp("set order")
	}
	if o == d.order {
		return nil
	}

	scratch, err := alloc.Default.Scratch(int64(len(d.data)))
	if err != nil {
		return errs.Wrap(errs.OutOfMemory, err, "cannot allocate transpose buffer").WithOp("set order")
	}
	defer alloc.Default.Release(scratch)
	copy(scratch, d.data)

	vox := int(d.NI() * d.NJ() * d.NK())
	nt := int(d.NT())
	n, p := vox, nt // KJIT -> TKJI
	if d.order == TKJI {
		n, p = nt, vox
	}
	transpose.Transpose(d.data, scratch, n, p, d.elementSize())

	d.setLayout(o)
	return nil
}

// SetOrderName is SetOrder for an order name.
func (d *Dataset) SetOrderName(name string) error {
	o, err := ParseOrder(name)
	if err != nil {
		return err
	}
	return d.SetOrder(o)
}
