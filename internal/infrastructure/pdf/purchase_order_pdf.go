// Package pdf genera la representación impresa de una orden de compra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa               │  N° Orden + Fecha + Estado  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: Nombre + entrega esperada                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Costo Unit. | Subtotal             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + QR con el número de orden                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var statusLabels = map[string]string{
	entity.PurchaseOrderDraft:     "BORRADOR",
	entity.PurchaseOrderSent:      "ENVIADA",
	entity.PurchaseOrderReceived:  "RECIBIDA",
	entity.PurchaseOrderCancelled: "ANULADA",
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.PurchaseOrderRenderer = (*PurchaseOrderPDF)(nil)

// PurchaseOrderPDF implementa usecase.PurchaseOrderRenderer usando Maroto v2.
type PurchaseOrderPDF struct {
	company string
}

// NewPurchaseOrderPDF company aparece en el encabezado.
func NewPurchaseOrderPDF(company string) *PurchaseOrderPDF {
	return &PurchaseOrderPDF{company: company}
}

// Render genera el PDF y devuelve sus bytes.
func (g *PurchaseOrderPDF) Render(_ context.Context, order *entity.PurchaseOrderDetail) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("pdf: orden nula")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de compra "+order.OrderNumber, true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.company, order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(order.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))
	if order.Notes != "" {
		m.AddRows(notesRow(order.Notes))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(company string, o *entity.PurchaseOrderDetail) core.Row {
	status := statusLabels[o.Status]
	if status == "" {
		status = strings.ToUpper(o.Status)
	}
	return row.New(20).Add(
		col.New(7).Add(
			text.New(nonEmpty(company, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ORDEN DE COMPRA", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("N° "+o.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+o.OrderDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Estado: "+status, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 13, Color: colorPrimary,
			}),
		),
	)
}

func supplierRow(o *entity.PurchaseOrderDetail) core.Row {
	expected := "—"
	if o.ExpectedDate != nil {
		expected = o.ExpectedDate.Format("02/01/2006")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(o.SupplierName, "—"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("Entrega esperada: "+expected, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("Costo Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func itemRows(items []entity.PurchaseOrderItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(it.Quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(nonEmpty(it.ProductName, it.ProductID.String()), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New("$"+formatMoney(it.UnitCost), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New("$"+formatMoney(it.Subtotal), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalRow(o *entity.PurchaseOrderDetail) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(o.OrderNumber+" "+o.ID.String(), props.Rect{Percent: 90, Center: true})),
		col.New(4),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New("$"+formatMoney(o.TotalAmount), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func notesRow(notes string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Observaciones: "+notes, props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney puntos de miles y coma decimal con dos cifras.
// Ej: 25000 → "25.000,00", 1234567.5 → "1.234.567,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
