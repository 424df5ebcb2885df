package glyph

import (
	"fmt"
	"image/color"
)

// IconKind enumerates the generated icons.
type IconKind int

const (
	IconStar IconKind = iota + 1
	IconBackArrow
	IconCalendar
	IconMagnifier
	IconPhoneHandset
	IconSortArrows
	IconDropdownCaret
)

// IconKinds lists every icon kind in declaration order.
var IconKinds = []IconKind{
	IconStar,
	IconBackArrow,
	IconCalendar,
	IconMagnifier,
	IconPhoneHandset,
	IconSortArrows,
	IconDropdownCaret,
}

var iconKindNames = map[IconKind]string{
	IconStar:          "star",
	IconBackArrow:     "back-arrow",
	IconCalendar:      "calendar",
	IconMagnifier:     "magnifier",
	IconPhoneHandset:  "phone-handset",
	IconSortArrows:    "sort-arrows",
	IconDropdownCaret: "dropdown-caret",
}

func (k IconKind) String() string {
	if s, ok := iconKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("IconKind(%d)", int(k))
}

// ParseIconKind returns the kind named s, as printed by IconKind.String.
func ParseIconKind(s string) (IconKind, error) {
	for k, name := range iconKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("glyph: unknown icon kind %q", s)
}

// IconSpec describes an icon to generate.
type IconSpec struct {
	Kind IconKind
	Size float64
	// Color is the main ink. For SortArrows it fills the upper triangle.
	Color color.NRGBA
	// Secondary is the calendar's paper color and the lower sort triangle's
	// fill. It is ignored by the other kinds.
	Secondary color.NRGBA
	// Outgoing selects the outgoing-call arrow of PhoneHandset.
	Outgoing bool
	// StrokeWidth overrides the default stroke width of stroked icons. Zero
	// means the default.
	StrokeWidth float64
}

// Icon is a generated icon: an ordered list of layers on a canvas whose
// origin is the top left corner.
type Icon struct {
	Kind   IconKind
	Canvas Size
	Layers Layers
}

// Generate builds the icon described by spec.
func Generate(spec IconSpec) (Icon, error) {
	width := func(def float64) float64 {
		if spec.StrokeWidth != 0 {
			return spec.StrokeWidth
		}
		return def
	}
	switch spec.Kind {
	case IconStar:
		return star(spec.Size, spec.Color, width(starStrokeWidth))
	case IconBackArrow:
		return backArrow(spec.Size, spec.Color, width(backStrokeWidth))
	case IconCalendar:
		return calendar(spec.Size, spec.Color, spec.Secondary, width(calendarContentWidth))
	case IconMagnifier:
		return magnifier(spec.Size, spec.Color, width(magnifierStrokeWidth))
	case IconPhoneHandset:
		return phoneHandset(spec.Size, spec.Color, spec.Outgoing, width(phoneStrokeWidth))
	case IconSortArrows:
		return SortArrows(spec.Size, spec.Color, spec.Secondary)
	case IconDropdownCaret:
		return DropdownCaret(spec.Size, spec.Color)
	default:
		return Icon{}, &ParameterError{Op: "Generate", Name: "kind", Value: float64(spec.Kind)}
	}
}
