package layout

import (
	"github.com/matzehuels/multicolumn/pkg/errors"
	"github.com/matzehuels/multicolumn/pkg/i18n"
)

// Preset is a named layout offered in menus and pickers.
type Preset struct {
	Name    string    // stable identifier used on the command line and in the API
	Title   i18n.Key  // localized menu title
	Columns int       // column count
	Ratios  []float64 // column widths, nil for equal columns
	Flags   Flags     // container flags
}

// Request returns the generation request for the preset with extra flags
// appended.
func (p Preset) Request(extra ...string) Request {
	return Request{
		Columns: p.Columns,
		Ratios:  append([]float64(nil), p.Ratios...),
		Flags:   append(Flags(nil), p.Flags...).Add(extra...),
	}
}

var presets = []Preset{
	{Name: "two", Title: i18n.KeyPresetTwo, Columns: 2},
	{Name: "sidebar-left", Title: i18n.KeyPresetSidebarLeft, Columns: 2, Ratios: []float64{30, 70}},
	{Name: "three", Title: i18n.KeyPresetThree, Columns: 3, Ratios: []float64{33, 34, 33}},
	{Name: "two-divider", Title: i18n.KeyPresetTwoDivider, Columns: 2, Flags: Flags{FlagBordered}},
	{Name: "three-divider", Title: i18n.KeyPresetThreeDivider, Columns: 3, Ratios: []float64{33, 34, 33}, Flags: Flags{FlagBordered}},
}

// dividerStart is the index of the first preset shown after the menu separator.
const dividerStart = 3

// Presets returns the built-in presets in menu order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		p.Ratios = append([]float64(nil), p.Ratios...)
		p.Flags = append(Flags(nil), p.Flags...)
		out[i] = p
	}
	return out
}

// SeparatorBefore reports whether menus draw a separator before preset i.
func SeparatorBefore(i int) bool {
	return i == dividerStart
}

// PresetByName looks up a built-in preset.
func PresetByName(name string) (Preset, error) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, errors.New(errors.ErrCodeInvalidPreset, "unknown preset: %s", name)
}
