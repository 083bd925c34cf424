// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfgen encodes laid-out documents as PDF files. Placement is
// delegated to internal/layout; this package owns the encoder boundary:
// font width tables, coordinate conversion, and byte output via fpdf.
package pdfgen

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/amulya/writer-engine/internal/layout"
	"github.com/amulya/writer-engine/pkg/types"
)

// docMetric measures string widths with the encoder's core font tables, in
// document units (points).
type docMetric struct {
	pdf *fpdf.Fpdf
}

func (m docMetric) Width(s string, f layout.Font) float64 {
	m.pdf.SetFont(f.Family, f.Style, f.Size)
	return m.pdf.GetStringWidth(s)
}

// Render lays out the document and encodes it as a PDF. Pages appear in
// layout order; every placed line is drawn at its recorded coordinates on
// its recorded page. Layout coordinates have a bottom-left origin, fpdf a
// top-left one, so y is flipped during encoding.
//
// Independent Render calls share no state: each builds and discards its own
// fpdf document and layout cursor.
func Render(doc layout.Document, geom layout.PageGeometry) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: geom.PageWidth, Ht: geom.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("writer-engine", true)

	lines, pages := layout.Layout(doc, geom, docMetric{pdf: pdf})

	open := -1
	for _, l := range lines {
		for open < l.Page {
			pdf.AddPage()
			open++
		}
		pdf.SetFont(l.Font.Family, l.Font.Style, l.Font.Size)
		pdf.Text(l.X, geom.PageHeight-l.Y, l.Text)
	}
	// A document with no placements still yields its blank pages.
	for open < pages-1 {
		pdf.AddPage()
		open++
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encoding PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderProse normalizes raw prose, splits it into paragraphs, and renders
// it under the given title.
func RenderProse(title, prose string, geom layout.PageGeometry) ([]byte, error) {
	return Render(layout.NewDocument(title, prose), geom)
}

// RenderBase64 renders the document and returns the bytes base64-encoded
// for embedding in a JSON response field.
func RenderBase64(title, prose string, geom layout.PageGeometry) (string, error) {
	raw, err := RenderProse(title, prose, geom)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// GeometryFromSetup converts a PageSetup into layout geometry, applying the
// Letter defaults for zero values.
func GeometryFromSetup(cfg types.PageSetup) layout.PageGeometry {
	g := layout.LetterGeometry()
	if cfg.PageWidth > 0 && cfg.PageHeight > 0 {
		inset := g.LeftMargin
		if cfg.MarginInset > 0 {
			inset = cfg.MarginInset
		}
		g = layout.Geometry(cfg.PageWidth, cfg.PageHeight, inset, g.LineHeight, g.TitleGap)
	} else if cfg.MarginInset > 0 {
		g = layout.Geometry(g.PageWidth, g.PageHeight, cfg.MarginInset, g.LineHeight, g.TitleGap)
	}
	if cfg.LineHeight > 0 {
		g.LineHeight = cfg.LineHeight
	}
	if cfg.TitleGap > 0 {
		g.TitleGap = cfg.TitleGap
	}
	return g
}
