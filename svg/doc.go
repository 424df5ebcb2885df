// Package svg converts between glyph paths and SVG.
//
// [ParsePath] and [FormatPath] read and write SVG path data (the d attribute),
// and [Writer] serializes primitives as a standalone SVG document in which
// every primitive becomes one <path> element.
package svg
