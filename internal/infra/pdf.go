package infra

// pdf.go generates A7-size thermal receipt-style PDFs for orders:
// header, order id and timestamp, line table (menu, quantity, subtotal),
// bold total, payment status footer. Output goes to an in-memory buffer
// so handlers can stream it straight into the response.

import (
	"bytes"
	"fmt"

	"warungpos/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// formatRupiah renders an integer rupiah amount with thousands separators.
func formatRupiah(amount int64) string {
	return "Rp " + decimal.NewFromInt(amount).StringFixed(0)
}

// GenerateReceiptPDF renders an order as a printable receipt and returns the
// PDF bytes. The order must come preloaded with its user and lines.
func GenerateReceiptPDF(order *model.Order) ([]byte, error) {
	// 74mm x 105mm, close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Warung POS", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Struk Pembayaran", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, "Order "+order.ID.String()[:8], "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, order.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	if order.User != nil {
		pdf.CellFormat(contentW, 4, "Kasir: "+order.User.Name, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	col1 := contentW * 0.52
	col2 := contentW * 0.16
	col3 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Menu", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, line := range order.Lines {
		name := ""
		if line.Menu != nil {
			name = line.Menu.Name
		}
		if len(name) > 22 {
			name = name[:21] + "…"
		}
		pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", line.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, formatRupiah(line.Subtotal), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, formatRupiah(order.Total), "", 1, "R", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 4, "Pembayaran ("+order.PaymentMethod+"):", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 4, order.PaymentStatus, "", 1, "R", false, 0, "")
	if order.PaymentLog != nil {
		pdf.CellFormat(col1+col2, 4, "Tunai:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, formatRupiah(order.PaymentLog.AmountPaid), "", 1, "R", false, 0, "")
		pdf.CellFormat(col1+col2, 4, "Kembalian:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, formatRupiah(order.PaymentLog.ChangeReturned), "", 1, "R", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Terima kasih!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
