// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout performs deterministic, width-aware text layout for
// fixed-page-size documents. It turns a title plus paragraphs of raw prose
// into absolute line placements, breaking pages when the vertical cursor
// would cross the bottom margin. Coordinates are PDF text space: the origin
// is the bottom-left corner of the page and y decreases as text flows down.
package layout

import "strings"

// Font identifies a core font face and size for width measurement and
// rendering. Style follows PDF conventions: "" regular, "B" bold.
type Font struct {
	Family string
	Style  string
	Size   float64
}

// The two faces used by rendered documents.
var (
	TitleFont = Font{Family: "Times", Style: "B", Size: 16}
	BodyFont  = Font{Family: "Times", Style: "", Size: 12}
)

// FontMetric measures the rendered width of a string in page units. The
// production implementation is backed by the PDF encoder's font tables;
// tests supply a deterministic fake.
type FontMetric interface {
	Width(s string, f Font) float64
}

// PageGeometry holds the fixed layout parameters for one document. Margins
// are absolute coordinates: RightMargin and TopMargin are derived from the
// page size minus the margin inset, so the printable area is
// [LeftMargin, RightMargin] x [BottomMargin, TopMargin].
type PageGeometry struct {
	PageWidth    float64
	PageHeight   float64
	LeftMargin   float64
	RightMargin  float64
	TopMargin    float64
	BottomMargin float64
	LineHeight   float64
	TitleGap     float64
}

// MaxWidth returns the maximum printable line width.
func (g PageGeometry) MaxWidth() float64 {
	return g.RightMargin - g.LeftMargin
}

// Letter page dimensions in PostScript points.
const (
	letterWidth  = 612.0
	letterHeight = 792.0
	inch         = 72.0
)

// LetterGeometry returns the default geometry: Letter page, one-inch
// margins, 16 pt body line height, 30 pt gap after the title.
func LetterGeometry() PageGeometry {
	return Geometry(letterWidth, letterHeight, inch, 16, 30)
}

// Geometry derives a PageGeometry from page dimensions, a uniform margin
// inset, a body line height, and a title gap.
func Geometry(pageWidth, pageHeight, inset, lineHeight, titleGap float64) PageGeometry {
	return PageGeometry{
		PageWidth:    pageWidth,
		PageHeight:   pageHeight,
		LeftMargin:   inset,
		RightMargin:  pageWidth - inset,
		TopMargin:    pageHeight - inset,
		BottomMargin: inset,
		LineHeight:   lineHeight,
		TitleGap:     titleGap,
	}
}

// Document is the immutable input to layout: a title and the body
// paragraphs in order.
type Document struct {
	Title      string
	Paragraphs []string
}

// NewDocument normalizes raw prose and splits it into a Document. Paragraph
// boundaries are blank-line separators.
func NewDocument(title, prose string) Document {
	return Document{
		Title:      title,
		Paragraphs: strings.Split(Normalize(prose), "\n\n"),
	}
}

// Line is a single placement instruction: draw Text with its baseline at
// (X, Y) on page Page. Placements are immutable once produced.
type Line struct {
	Text string
	X    float64
	Y    float64
	Page int
	Font Font
}
