package layout

import "github.com/matzehuels/multicolumn/pkg/errors"

// Well-known container flags. Their presentation is up to the renderer.
const (
	FlagBordered   = "bordered"   // vertical dividers between columns
	FlagHorizontal = "horizontal" // horizontal divider under the container
)

// Flags is an ordered set of metadata flags.
type Flags []string

// NewFlags builds a set from flags, dropping duplicates and empty strings.
func NewFlags(flags ...string) Flags {
	var f Flags
	return f.Add(flags...)
}

// Add returns the set with flags appended. Flags already present keep their
// original position.
func (f Flags) Add(flags ...string) Flags {
	for _, flag := range flags {
		if flag == "" || f.Has(flag) {
			continue
		}
		f = append(f, flag)
	}
	return f
}

// Has reports whether flag is in the set.
func (f Flags) Has(flag string) bool {
	for _, x := range f {
		if x == flag {
			return true
		}
	}
	return false
}

// Validate checks every flag can be written into a callout header.
func (f Flags) Validate() error {
	for _, flag := range f {
		if err := errors.ValidateMetadataFlag(flag); err != nil {
			return err
		}
	}
	return nil
}
