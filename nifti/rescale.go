package nifti

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/robert-malhotra/go-nifti/internal/dtype"
	"github.com/robert-malhotra/go-nifti/internal/errs"
)

// Rescale linearly maps the voxel values onto [newMin, newMax] in place.
//
// The current range is scanned starting from 0, so it always includes 0.
// Integer datatypes round to nearest and saturate; floating-point values
// are stored as computed. The header's scl_slope and scl_inter are not
// changed.
func (d *Dataset) Rescale(newMin, newMax float64) error {
	if !(newMax > newMin) {
		return errs.New(errs.Value, "new_min must be less than new_max").WithOp("rescale")
	}

	n := d.Len()
	oldMin, oldMax := 0.0, 0.0
	for i := 0; i < n; i++ {
		v := dtype.Get(d.data, d.code, i)
		if v < oldMin {
			oldMin = v
		}
		if v > oldMax {
			oldMax = v
		}
	}

	scale := 1.0
	if !isClose(oldMax, oldMin) {
		scale = (newMax - newMin) / (oldMax - oldMin)
	}

	for i := 0; i < n; i++ {
		v := dtype.Get(d.data, d.code, i)
		dtype.SetRounded(d.data, d.code, i, newMin+scale*(v-oldMin))
	}
	return nil
}

// isClose reports whether a is within tolerance of the reference b.
func isClose(a, b float64) bool {
	const (
		atol = 1e-8
		rtol = 1e-5
	)
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// Stats summarizes the voxel values.
type Stats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summary returns the true extrema, mean and sample standard deviation of
// the voxel values.
func (d *Dataset) Summary() Stats {
	vals := d.Float64s()
	if vals == nil {
		vals = make([]float64, d.Len())
		for i := range vals {
			vals[i] = dtype.Get(d.data, d.code, i)
		}
	}
	s := Stats{Count: len(vals)}
	if len(vals) == 0 {
		return s
	}
	s.Min = floats.Min(vals)
	s.Max = floats.Max(vals)
	if len(vals) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(vals, nil)
	} else {
		s.Mean = vals[0]
	}
	return s
}
