// Package receipt renders collection receipts as PDF documents.
package receipt

import (
	"bytes"
	"fmt"
	"time"

	"wasteflow/internal/core/application/usecases/queries"
	"wasteflow/internal/core/domain/model/request"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const notAvailable = "-"

type Generator struct {
	location *time.Location
}

// NewGenerator prints timestamps in the service time zone.
func NewGenerator() *Generator {
	return &Generator{location: request.ServiceTimeZone}
}

func (g *Generator) Render(r queries.CollectionReceipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetTitle("Collection receipt", true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Waste collection receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Receipt No. "+r.RecordID.String(), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	section(pdf, "Service provider")
	row(pdf, tr, "Company", r.CompanyName)
	row(pdf, tr, "Vehicle", orNotAvailable(r.VehiclePlate))
	pdf.Ln(4)

	section(pdf, "Collection")
	row(pdf, tr, "Request", r.RequestID.String())
	row(pdf, tr, "Address", r.Address)
	row(pdf, tr, "Waste type", r.WasteType)
	row(pdf, tr, "Bags", fmt.Sprintf("%d", r.QuantityBags))
	row(pdf, tr, "Estimated weight", formatWeight(r.EstimatedWeightKg))
	row(pdf, tr, "Actual weight", formatWeight(r.ActualWeightKg))
	row(pdf, tr, "Collected at", r.CollectedAt.In(g.location).Format("2006-01-02 15:04"))
	if r.DriverNotes != "" {
		row(pdf, tr, "Driver notes", r.DriverNotes)
	}
	if r.Rating != nil {
		row(pdf, tr, "Resident rating", fmt.Sprintf("%d / 5", *r.Rating))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func row(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, tr(value), "", "L", false)
}

func formatWeight(w *decimal.Decimal) string {
	if w == nil {
		return notAvailable
	}
	return w.StringFixed(2) + " kg"
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
