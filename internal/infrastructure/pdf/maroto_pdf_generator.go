// Package pdf implementa la exportación a PDF (A4) de la vista compuesta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  BARRA DE ACENTO + línea de marca (nombre del emisor)        │
//	│  TÍTULO      │  RECEPTOR + metadatos  │  EMISOR + contacto   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Cantidad | P.Unit | Total              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: (Subtotal / Descuento) / Total                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: notas, datos bancarios, avisos legales                 │
//	└─────────────────────────────────────────────────────────────┘
//
// El generador no recalcula nada: dibuja los textos que ya trae la vista.
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/invoice-composer/internal/domain/composition"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 118, Blue: 110}
	colorGray    = &props.Color{Red: 107, Green: 114, Blue: 128}
	colorLight   = &props.Color{Red: 229, Green: 231, Blue: 235}
)

// lineHeight alto (mm) de una línea de texto de 9 pt.
const lineHeight = 4.5

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoDocumentGenerator implementa document.PDFGenerator usando Maroto v2.
type MarotoDocumentGenerator struct {
	author string
}

// NewMarotoDocumentGenerator construye el generador; author va a los metadatos del PDF
// (si está vacío se usa la línea de marca del documento).
func NewMarotoDocumentGenerator(author string) *MarotoDocumentGenerator {
	return &MarotoDocumentGenerator{author: author}
}

// GenerateDocumentPDF genera el PDF y devuelve sus bytes.
func (g *MarotoDocumentGenerator) GenerateDocumentPDF(_ context.Context, view composition.View) ([]byte, error) {
	author := g.author
	if author == "" {
		author = view.Header.BrandLine
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(view.AriaLabel, true).
		WithAuthor(author, true).
		Build()

	m := maroto.New(cfg)

	// Encabezado
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 1.2}))
	m.AddRows(brandRow(view.Header))
	m.AddRows(headerRow(view.Header))
	m.AddRows(line.NewRow(6))

	// Tabla de posiciones
	m.AddRows(tableHeaderRow(view.Table.Columns))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))
	for _, r := range tableDetailRows(view.Table.Rows) {
		m.AddRows(r)
	}

	// Resumen
	m.AddRows(line.NewRow(1, props.Line{Color: colorLight, Thickness: 0.3}))
	for _, r := range summaryRows(view.Table.Summary) {
		m.AddRows(r)
	}

	// Pie
	m.AddRows(line.NewRow(6))
	for _, r := range footerRows(view.Footer) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// brandRow: nombre del emisor sobre el bloque de encabezado.
func brandRow(h composition.HeaderSection) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(pdfText(strings.ToUpper(h.BrandLine)), props.Text{
			Size: 8, Color: colorGray, Top: 2,
		})),
	)
}

// headerRow: título (izq), receptor + metadatos (centro), emisor + contacto (der).
func headerRow(h composition.HeaderSection) core.Row {
	recipient := append(append([]string{}, h.RecipientLines...), "")
	recipient = append(recipient, fieldLines(h.RecipientMeta)...)
	sender := append(append([]string{}, h.SenderLines...), "")
	sender = append(sender, fieldLines(h.SenderMeta)...)

	height := float64(max(len(recipient), len(sender), 2))*lineHeight + 2

	return row.New(height).Add(
		col.New(3).Add(text.New(pdfText(h.Title), props.Text{
			Style: fontstyle.Bold, Size: 16, Color: colorPrimary,
		})),
		stackCol(5, recipient),
		stackCol(4, sender),
	)
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow(c composition.TableColumns) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(pdfText(label), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(c.Description, 6, align.Left),
		h(c.Quantity, 2, align.Center),
		h(c.UnitPrice, 2, align.Right),
		h(c.Total, 2, align.Right),
	)
}

// tableDetailRows: una fila por posición, en el orden de la vista.
func tableDetailRows(rows []composition.TableRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		desc := col.New(6)
		for i, l := range r.DescriptionLines {
			p := props.Text{Size: 9, Align: align.Left, Top: 1 + float64(i)*lineHeight, Left: 1}
			if i == 0 {
				p.Style = fontstyle.Bold
			}
			desc.Add(text.New(pdfText(l), p))
		}
		height := float64(max(len(r.DescriptionLines), 1))*lineHeight + 2

		result = append(result, row.New(height).Add(
			desc,
			col.New(2).Add(text.New(pdfText(r.Quantity), props.Text{Size: 9, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(pdfText(r.UnitPrice), props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(pdfText(r.Total), props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// summaryRows: subtotal y descuento (si los hay) y total, alineados a la derecha.
func summaryRows(summary []composition.SummaryRow) []core.Row {
	result := make([]core.Row, 0, len(summary))
	for _, s := range summary {
		p := props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1}
		if s.Role == composition.RoleTotal {
			p = props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1, Right: 1}
		}
		result = append(result, row.New(7).Add(
			col.New(6),
			col.New(4).Add(text.New(pdfText(s.Label), p)),
			col.New(2).Add(text.New(pdfText(s.Value), p)),
		))
	}
	return result
}

// footerRows: notas, bloque bancario y avisos legales; cada parte solo si existe.
func footerRows(f composition.FooterSection) []core.Row {
	var rows []core.Row
	for _, l := range f.NotesLines {
		rows = append(rows, textRow(l, props.Text{Size: 9}))
	}

	rows = append(rows, line.NewRow(4, props.Line{Color: colorLight, Thickness: 0.3}))

	if f.HasBankDetails() {
		for _, l := range fieldLines(f.BankDetails) {
			rows = append(rows, textRow(l, props.Text{Size: 8, Color: colorGray}))
		}
		rows = append(rows, row.New(2))
	}
	if f.TaxIDLine != "" {
		rows = append(rows, textRow(f.TaxIDLine, props.Text{Size: 8, Color: colorGray}))
	}
	if f.TaxNote != "" {
		rows = append(rows, textRow(f.TaxNote, props.Text{Size: 8, Color: colorGray}))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func textRow(s string, p props.Text) core.Row {
	if s == "" {
		return row.New(lineHeight / 2)
	}
	return row.New(lineHeight).Add(col.New(12).Add(text.New(pdfText(s), p)))
}

// stackCol apila líneas en una columna; la primera va en negrita. Las líneas vacías
// dejan el hueco pero no dibujan nada.
func stackCol(size int, lines []string) core.Col {
	c := col.New(size)
	for i, l := range lines {
		if l == "" {
			continue
		}
		p := props.Text{Size: 9, Top: float64(i) * lineHeight}
		if i == 0 {
			p.Style = fontstyle.Bold
		}
		c.Add(text.New(pdfText(l), p))
	}
	return c
}

func fieldLines(fields []composition.Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Label + " " + f.Value
	}
	return out
}

// pdfText adapta el texto a las fuentes estándar (cp1252), que no tienen el signo menos tipográfico.
func pdfText(s string) string {
	return strings.ReplaceAll(s, composition.MinusSign, "-")
}
