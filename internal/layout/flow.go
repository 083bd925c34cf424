// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import "strings"

// cursor tracks the running layout position: the page being filled and the
// baseline y for the next line. One cursor is created per Layout call and
// never escapes it, so independent layouts share no state.
type cursor struct {
	page int
	y    float64
}

// Layout places a document's title and wrapped body lines onto fixed-size
// pages and returns the placements plus the total page count.
//
// The title is drawn at the top of page 0 in TitleFont and is followed by
// the geometry's title gap. Each body paragraph is wrapped to the printable
// width; before a line is placed the cursor is checked, and if the line
// would land below the bottom margin a page break is emitted first (next
// page index, y back to the top margin, body font). The check runs strictly
// before placement, so no line is ever placed below the printable area.
// After each paragraph the cursor advances an extra half line height with
// no break check; the next line's own check catches any overflow.
//
// An empty document produces a single page with no placements.
func Layout(doc Document, geom PageGeometry, metric FontMetric) ([]Line, int) {
	var placed []Line
	cur := cursor{page: 0, y: geom.TopMargin}

	if strings.TrimSpace(doc.Title) != "" {
		placed = append(placed, Line{
			Text: doc.Title,
			X:    geom.LeftMargin,
			Y:    cur.y,
			Page: cur.page,
			Font: TitleFont,
		})
	}
	cur.y -= geom.TitleGap

	maxWidth := geom.MaxWidth()
	for _, para := range doc.Paragraphs {
		lines := Wrap(para, metric, BodyFont, maxWidth)
		if len(lines) == 0 {
			continue
		}
		for _, text := range lines {
			if cur.y-geom.LineHeight < geom.BottomMargin {
				cur.page++
				cur.y = geom.TopMargin
			}
			placed = append(placed, Line{
				Text: text,
				X:    geom.LeftMargin,
				Y:    cur.y,
				Page: cur.page,
				Font: BodyFont,
			})
			cur.y -= geom.LineHeight
		}
		// Extra space between paragraphs.
		cur.y -= geom.LineHeight * 0.5
	}

	return placed, cur.page + 1
}
