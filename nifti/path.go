package nifti

import (
	"strings"

	"github.com/robert-malhotra/go-nifti/internal/errs"
)

// container describes the file layout implied by a path's extension.
type container struct {
	paired  bool // header in .hdr, image in .img
	gzipped bool
}

var extensions = []struct {
	suffix string
	c      container
}{
	{".hdr", container{paired: true}},
	{".hdr.gz", container{paired: true, gzipped: true}},
	{".nii", container{}},
	{".nii.gz", container{gzipped: true}},
}

// parseExt returns the container for path or a domain error for an
// unrecognized extension.
func parseExt(path string) (container, error) {
	for _, e := range extensions {
		if strings.HasSuffix(path, e.suffix) {
			return e.c, nil
		}
	}
	return container{}, errs.New(errs.Domain, "invalid NIfTI file extension").WithPath(path)
}

// imagePath returns the image file paired with a .hdr or .hdr.gz header.
func imagePath(hdrPath string) string {
	if base, ok := strings.CutSuffix(hdrPath, ".hdr.gz"); ok {
		return base + ".img.gz"
	}
	if base, ok := strings.CutSuffix(hdrPath, ".hdr"); ok {
		return base + ".img"
	}
	return hdrPath
}
