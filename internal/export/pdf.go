// Package export renders visitor views as downloadable documents.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/evcraddock/visitor-log/internal/visitor"
)

// DefaultFilename is the suggested name for exported visitor lists.
const DefaultFilename = "visitor-list.pdf"

const timeFormat = "2006-01-02 15:04"

var (
	columns = []string{"Name", "Purpose", "Contact", "Check-In", "Check-Out"}
	widths  = []float64{55, 28, 27, 40, 40}
)

// PDF writes records as a paginated table titled "Visitor Log". Records
// should already be filtered and sorted by the caller; rows appear in the
// order given. A nil check-out time renders as "N/A".
func PDF(records []*visitor.Visitor, w io.Writer) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, "Visitor Log")
	doc.Ln(14)

	writeHeader(doc)

	_, pageHeight := doc.GetPageSize()
	for _, v := range records {
		if doc.GetY() > pageHeight-25 {
			doc.AddPage()
			writeHeader(doc)
		}

		cells := []string{
			v.Name,
			string(v.Purpose),
			v.Contact,
			v.CheckInTime.Format(timeFormat),
			checkOutLabel(v),
		}
		for i, c := range cells {
			doc.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("rendering visitor list: %w", err)
	}
	return nil
}

// WriteFile renders records to a PDF file at path.
func WriteFile(records []*visitor.Visitor, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := PDF(records, f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return fmt.Errorf("%w (also failed to close: %v)", err, closeErr)
		}
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// checkOutLabel formats the Check-Out column: "N/A" while the visitor is
// still on premises.
func checkOutLabel(v *visitor.Visitor) string {
	if v.CheckOutTime == nil {
		return "N/A"
	}
	return v.CheckOutTime.Format(timeFormat)
}

// writeHeader draws the table header row. Repeated at the top of every
// page.
func writeHeader(doc *gofpdf.Fpdf) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(230, 230, 230)
	for i, c := range columns {
		doc.CellFormat(widths[i], 8, c, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)
	doc.SetFont("Helvetica", "", 10)
}
