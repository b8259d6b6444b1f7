// Package pdf renders the printable documents: the sales invoice (plain and
// letterhead variants), advance receipts and the transaction summary. Layout
// is data: each document is a Template mapping field names to positions,
// consumed by one generic renderer, so the calculation code never touches
// coordinates.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Field places one named value on the page. Coordinates are millimetres on
// A4 portrait.
type Field struct {
	Name  string
	X, Y  float64
	Size  float64
	Style string // "", "B", "I"
	Align string // "L" (default) or "R"
}

// Label is static text drawn regardless of values.
type Label struct {
	Text  string
	X, Y  float64
	Size  float64
	Style string
}

type Template struct {
	Title      string
	Background string // optional raster image drawn full-page first
	Labels     []Label
	Fields     []Field
}

const fontFamily = "Helvetica"

// Render draws the template with the given values and returns the PDF bytes.
// Fields with no value are left blank.
func (t Template) Render(values map[string]string) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(t.Title, true)
	doc.AddPage()

	if t.Background != "" {
		w, h := doc.GetPageSize()
		doc.ImageOptions(t.Background, 0, 0, w, h, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	for _, l := range t.Labels {
		size := l.Size
		if size == 0 {
			size = 10
		}
		doc.SetFont(fontFamily, l.Style, size)
		doc.Text(l.X, l.Y, l.Text)
	}

	for _, f := range t.Fields {
		v, ok := values[f.Name]
		if !ok || v == "" {
			continue
		}
		size := f.Size
		if size == 0 {
			size = 10
		}
		doc.SetFont(fontFamily, f.Style, size)
		x := f.X
		if f.Align == "R" {
			x -= doc.GetStringWidth(v)
		}
		doc.Text(x, f.Y, v)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", t.Title, err)
	}
	return buf.Bytes(), nil
}

// FieldNames lists the value keys the template consumes, for tests.
func (t Template) FieldNames() []string {
	names := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Money formats an LKR or JPY amount with thousands separators for printing.
func Money(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := len(s) - 3
	out := s[dot:]
	intPart := s[:dot]
	neg := false
	if len(intPart) > 0 && intPart[0] == '-' {
		neg = true
		intPart = intPart[1:]
	}
	for len(intPart) > 3 {
		out = "," + intPart[len(intPart)-3:] + out
		intPart = intPart[:len(intPart)-3]
	}
	out = intPart + out
	if neg {
		out = "-" + out
	}
	return out
}
