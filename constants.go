package glyph

// Proportions and defaults of the generated artwork. Unless noted otherwise,
// lengths are fractions of the icon size s. The values are tuned to match the
// reference screen pixel for pixel and must not be rounded.
const (
	// Star: decagon with alternating radii around the canvas center.
	StarOuterRatio  = 0.4
	StarInnerRatio  = 0.18
	starStrokeWidth = 2.5

	// Back arrow: chevron opening to the right.
	backArrowOuterX  = 0.6
	backArrowTipX    = 0.3
	backArrowHalfArm = 0.4
	backStrokeWidth  = 2.5

	// Calendar: rounded body, two binder ticks, two text lines.
	calendarBodyX        = 0.1
	calendarBodyY        = 0.25
	calendarBodyW        = 0.8
	calendarBodyH        = 0.75
	calendarCornerRadius = 4 // absolute, not scaled with s
	calendarEarLeftX     = 0.3
	calendarEarRightX    = 0.7
	calendarEarTop       = 0.15
	calendarEarLength    = 0.2
	calendarLineLeft     = 0.25
	calendarLine1Right   = 0.75
	calendarLine2Right   = 0.55
	calendarLine1Y       = 0.35 // of the body height, below its top
	calendarLine2Y       = 0.65 // of the body height, below its top
	calendarBorderWidth  = 1.5
	calendarContentWidth = 2.2

	// Magnifier: large ring, short handle at 45°.
	magnifierCenter       = 0.4
	magnifierRadius       = 0.35
	magnifierHandleOffset = 0.7 // of the radius, on each axis
	magnifierHandleLength = 0.25
	magnifierStrokeWidth  = 2.0

	// Phone handset: arrow coordinates live on a 24×24 design grid.
	phoneGrid        = 24.0
	phoneStrokeWidth = 2.5 // on the design grid

	// Sort arrows: two triangles base to base on a 0.6s × s canvas.
	sortCanvasWidth    = 0.6
	sortTriangleWidth  = 0.8 // of the canvas width
	sortTriangleHeight = 0.28
	sortGap            = 0.1

	// Dropdown caret: equilateral triangle pointing down.
	equilateralHeight = 0.866025

	// MiterLimit is the ratio of miter length to stroke width beyond which
	// miter joins are drawn as bevels.
	MiterLimit = 4.0

	// Curve field.
	DefaultLayerCount = 22
	DefaultOffset     = 10.0
	CurveSamples      = 61
	curveMinK         = 1500.0
	curveMaxK         = 52000.0
	curveKExponent    = 1.3
	curveBaseOpacity  = 0.03
	curveOpacityRange = 0.03
	curveBaseWidth    = 0.6
	curveWidthRange   = 0.1
	curveOverscanX    = 80.0
	curveClipMargin   = 50.0
)

// Phone arrow geometry on the 24×24 design grid.
var (
	phoneOutgoingShaft = [2]Point{{15, 6}, {24, 6}}
	phoneOutgoingHead  = [3]Point{{20, 3}, {24, 6}, {20, 9}}
	phoneIncomingShaft = [2]Point{{20, 2}, {13, 9}}
	phoneIncomingHead  = [3]Point{{13.7, 4.1}, {13, 9}, {17.9, 8.3}}
)

// Palette of the call-log screen.
var (
	OutgoingGreen    = MustParseHexColor("#0bb415")
	IncomingBlue     = MustParseHexColor("#5fa8f2")
	CalendarInk      = MustParseHexColor("#e57d80")
	CalendarPaper    = MustParseHexColor("#ffdee3")
	SortEmphasis     = MustParseHexColor("#353535")
	SortMuted        = MustParseHexColor("#a3a3a3")
	DropdownGrey     = MustParseHexColor("#999999")
	MagnifierGrey    = MustParseHexColor("#939393")
	HeaderRed        = MustParseHexColor("#ef625e")
	HeaderButtonPink = MustParseHexColor("#e8b5b0")
	Black            = MustParseHexColor("#000000")
	White            = MustParseHexColor("#ffffff")
)
