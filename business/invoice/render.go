package invoice

import (
	"bytes"
	"fmt"
	"urbankicks/domain"

	"github.com/jung-kurt/gofpdf"
)

// Fixed seller block and boilerplate printed on every invoice.
const (
	sellerName   = "UrbanKicks"
	sellerLine1  = "Plot No.6, Lala Lajpat Rai Path"
	sellerLine2  = "Nehru Place"
	sellerPhone  = "+91 1234567890"
	sellerSite   = "www.urbankicks.com"
	termsText    = "All orders are final. No returns unless damaged or incorrect."
	paymentText  = "Payments accepted via card, UPI, or wallet. Contact support for issues."
	currencyMark = "Rs "
)

// renderPDF draws the invoice onto a Letter page. Every block sits at a
// fixed coordinate; changing the layout means recomputing the offsets
// below.
func renderPDF(order domain.Order, logoPath string) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(true, 50)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	// tinted page background
	pdf.SetFillColor(254, 243, 240)
	pdf.Rect(0, 0, pageW, pageH, "F")
	pdf.SetTextColor(0, 0, 0)

	if logoPath != "" {
		pdf.ImageOptions(logoPath, 250, 40, 100, 0, false,
			gofpdf.ImageOptions{ImageType: "", ReadDpi: true}, 0, "")
	}

	pdf.SetFont("Helvetica", "", 24)
	cellText(pdf, 0, 160, pageW, "Invoice", "C")

	pdf.SetDrawColor(201, 163, 65)
	pdf.Line(240, 185, 360, 185)

	const yStart = 210.0

	gold(pdf)
	pdf.SetFont("Helvetica", "", 10)
	cellText(pdf, 50, yStart, 200, "INVOICE FROM", "L")

	black(pdf)
	pdf.SetFont("Helvetica", "", 12)
	cellText(pdf, 50, yStart+15, 250, sellerName, "L")
	cellText(pdf, 50, yStart+30, 250, sellerLine1, "L")
	cellText(pdf, 50, yStart+45, 250, sellerLine2, "L")
	cellText(pdf, 50, yStart+60, 250, sellerPhone, "L")

	gold(pdf)
	pdf.SetFont("Helvetica", "", 10)
	cellText(pdf, 400, yStart, 160, "INVOICE TO", "L")

	black(pdf)
	pdf.SetFont("Helvetica", "", 12)
	cellText(pdf, 400, yStart+15, 160, buyerName(order), "L")
	cellText(pdf, 400, yStart+30, 160, orEmpty(order.ShippingAddress.Street, "Street N/A"), "L")
	cellText(pdf, 400, yStart+45, 160, orEmpty(order.ShippingAddress.City, "City N/A"), "L")
	cellText(pdf, 400, yStart+60, 160, order.CustomerInfo.Email, "L")

	const tableTop = yStart + 100

	pdf.SetFont("Helvetica", "", 12)
	cellText(pdf, 50, tableTop, 180, "DESCRIPTION", "L")
	cellText(pdf, 250, tableTop, 80, "RATE", "R")
	cellText(pdf, 330, tableTop, 70, "QUANTITY", "R")
	cellText(pdf, 450, tableTop, 100, "SUBTOTAL", "R")

	pdf.Line(50, tableTop+18, 550, tableTop+18)

	position := tableTop + 30
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(51, 51, 51)
	for _, item := range order.Items {
		subtotal := item.Price * float64(item.Quantity)
		cellText(pdf, 50, position, 180, item.Title, "L")
		cellText(pdf, 250, position, 80, fmt.Sprintf("%s%.2f", currencyMark, item.Price), "R")
		cellText(pdf, 330, position, 70, fmt.Sprintf("%d", item.Quantity), "R")
		cellText(pdf, 450, position, 100, fmt.Sprintf("%s%.2f", currencyMark, subtotal), "R")
		position += 20
	}

	pdf.Line(50, position+10, 550, position+10)

	black(pdf)
	pdf.SetFont("Helvetica", "", 14)
	cellText(pdf, 400, position+30, 100, "TOTAL", "R")

	gold(pdf)
	pdf.SetFont("Helvetica", "B", 16)
	cellText(pdf, 450, position+30, 100, fmt.Sprintf("%s%.2f", currencyMark, order.Totals.Total), "R")

	footerY := position + 100

	gold(pdf)
	pdf.SetFont("Helvetica", "", 10)
	cellText(pdf, 50, footerY, 200, "TERMS & CONDITIONS", "L")

	pdf.SetTextColor(68, 68, 68)
	pdf.SetFont("Helvetica", "", 9)
	wrapText(pdf, 50, footerY+15, 200, termsText)

	gold(pdf)
	pdf.SetFont("Helvetica", "", 10)
	cellText(pdf, 300, footerY, 250, "PAYMENT METHOD", "L")

	pdf.SetTextColor(68, 68, 68)
	pdf.SetFont("Helvetica", "", 9)
	wrapText(pdf, 300, footerY+15, 250, paymentText)

	gold(pdf)
	pdf.SetFont("Helvetica", "", 10)
	cellText(pdf, 0, footerY+100, pageW, sellerSite, "C")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}

	return buf.Bytes(), nil
}

func cellText(pdf *gofpdf.Fpdf, x, y, w float64, text, align string) {
	pdf.SetXY(x, y)
	pdf.CellFormat(w, 14, text, "", 0, align, false, 0, "")
}

func wrapText(pdf *gofpdf.Fpdf, x, y, w float64, text string) {
	pdf.SetXY(x, y)
	pdf.MultiCell(w, 12, text, "", "L", false)
}

func gold(pdf *gofpdf.Fpdf) {
	pdf.SetTextColor(201, 163, 65)
}

func black(pdf *gofpdf.Fpdf) {
	pdf.SetTextColor(0, 0, 0)
}

// buyerName falls back through the same fields the storefront shows.
func buyerName(order domain.Order) string {
	if order.CustomerInfo.FullName != "" {
		return order.CustomerInfo.FullName
	}
	return "Valued Customer"
}

func orEmpty(val, fallback string) string {
	if val != "" {
		return val
	}
	return fallback
}
