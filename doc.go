// Package glyph generates the vector artwork of the call-log screen from
// numbers alone: a handful of small icons and a decorative background of
// hyperbola curves. Nothing is loaded from image files except the phone
// handset silhouette, which renderers supply (see package asset).
//
// # Primitives
//
// Every generator returns renderer-agnostic [Primitive] values: a [Path]
// (an ordered list of [PathElement]s such as MoveTo, LineTo and ClosePath)
// together with a [Style] saying whether to stroke or fill it, in which
// color, and with which caps and joins. A primitive may instead name an asset
// that the renderer draws, tinted, into a rectangle. Icons and patterns are
// ordered lists of primitives ([Layers]); order is paint order.
//
// Adapters in sub-packages turn primitives into SVG (package svg), pixels
// (package raster) or ebiten draw calls (package ebitendraw).
//
// # Icons
//
// The icons are generated at any size s, with all proportions relative to s:
//
//   - [Star], a ten-vertex star outline (see [StarVertices])
//   - [BackArrow], a left-pointing chevron
//   - [Calendar], a rounded page with binder ticks and two text lines
//   - [Magnifier], a ring with a 45° handle
//   - [PhoneHandset], the handset asset with an incoming or outgoing arrow
//   - [SortArrows], an up and a down triangle with separate fills
//   - [DropdownCaret], a downward equilateral triangle (see [EquilateralTriangleDown])
//
// [Generate] dispatches on an [IconSpec].
//
// # Curve field
//
// [CurveField] builds a [Pattern] of rectangular hyperbolas y = k/x whose
// origin sits just below the bottom-left corner of a viewport. The innermost
// curve has the largest k and is the faintest; each following curve has a
// smaller k and a higher opacity.
//
// # Errors
//
// Generators are pure and safe for concurrent use. Invalid arguments
// (non-positive or non-finite sizes, ratios and widths, too few layers) are
// reported as a [*ParameterError] wrapping [ErrInvalidParameter]; no partial
// output is returned.
package glyph
