// Diagnostic tool for inspecting NIfTI files
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/robert-malhotra/go-nifti/internal/header"
	"github.com/robert-malhotra/go-nifti/nifti"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "-v" {
		logrus.SetLevel(logrus.DebugLevel)
		args = args[1:]
	}
	if len(args) < 1 || len(args) > 3 {
		fmt.Println("Usage: niftidiag [-v] <file.nii[.gz]|file.hdr[.gz]> [output] [datatype]")
		os.Exit(1)
	}

	filename := args[0]
	fmt.Printf("=== Analyzing %s ===\n\n", filename)

	d, err := nifti.ReadFull(filename)
	if err != nil {
		fmt.Printf("ERROR: Failed to read file: %v\n", err)
		os.Exit(1)
	}
	printHeader(d)
	printStats(d)

	if len(args) < 2 {
		return
	}
	out := d
	if len(args) == 3 {
		if out, err = d.ToDatatype(args[2]); err != nil {
			fmt.Printf("ERROR: Conversion failed: %v\n", err)
			os.Exit(1)
		}
	}
	if err := nifti.Write(out, args[1]); err != nil {
		fmt.Printf("ERROR: Failed to write %s: %v\n", args[1], err)
		os.Exit(1)
	}
	fmt.Printf("\nWrote %s (%s)\n", args[1], out.Datatype())
}

func printHeader(d *nifti.Dataset) {
	h := d.Header()
	fmt.Printf("Dimensions:  %d x %d x %d x %d (dim[0]=%d)\n", d.NI(), d.NJ(), d.NK(), d.NT(), h.Dim[0])
	fmt.Printf("Datatype:    %s (bitpix %d)\n", d.Datatype(), d.Bitpix())
	fmt.Printf("Order:       %s, shape %v\n", d.Order(), d.Shape())
	fmt.Printf("Pixdim:      %g %g %g %g\n", h.Pixdim[1], h.Pixdim[2], h.Pixdim[3], h.Pixdim[4])
	fmt.Printf("Units:       0x%02x\n", h.XYZTUnits)
	fmt.Printf("vox_offset:  %d (single file: %v)\n", h.VoxOffset, h.SingleFile())
	fmt.Printf("Scaling:     slope %g, inter %g\n", h.SclSlope, h.SclInter)
	fmt.Printf("qform/sform: %d/%d\n", h.QformCode, h.SformCode)
	if s := header.CString(h.Descrip[:]); s != "" {
		fmt.Printf("Description: %q\n", s)
	}
	if h.IntentCode != 0 {
		fmt.Printf("Intent:      %d %q (%g, %g, %g)\n", h.IntentCode,
			header.CString(h.IntentName[:]), h.IntentP1, h.IntentP2, h.IntentP3)
	}
	fmt.Println()
}

func printStats(d *nifti.Dataset) {
	s := d.Summary()
	fmt.Printf("Voxels:      %d\n", s.Count)
	fmt.Printf("Range:       [%g, %g]\n", s.Min, s.Max)
	fmt.Printf("Mean:        %g\n", s.Mean)
	fmt.Printf("Std dev:     %g\n", s.StdDev)
}
