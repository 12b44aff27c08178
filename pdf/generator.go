// Package pdf renders leave-approval certificates. Both the approve handler
// and the on-demand endpoint go through the same Generator, so the layout
// cannot drift between the two paths.
package pdf

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/datefmt"
	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/models"
)

type Generator struct {
	Dir        string // filesystem directory for generated files
	PublicBase string // URL prefix the files are served under, e.g. "/pdfs"
}

func NewGenerator(dir, publicBase string) *Generator {
	return &Generator{Dir: dir, PublicBase: publicBase}
}

// FileName is content-addressed by leave id, so regeneration overwrites in place.
func FileName(leaveID uint) string {
	return fmt.Sprintf("leave_%d.pdf", leaveID)
}

// Generate writes the approval certificate for the given leave and returns
// the public URL path it is served under.
func (g *Generator) Generate(leave *models.LeaveRequest, student *models.Student) (string, error) {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create pdf dir: %w", err)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	// title banner
	doc.SetFillColor(25, 55, 109)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 14, "Hostel Leave Approval Certificate", "", 1, "C", true, 0, "")
	doc.Ln(6)

	// student identity block
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 7, fmt.Sprintf("Name: %s", student.Name), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, fmt.Sprintf("Email: %s", student.Email), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, fmt.Sprintf("Hostel: %s    Year: %s", student.Hostel, student.Year), "", 1, "L", false, 0, "")
	doc.Ln(6)

	// leave details table
	doc.SetFont("Helvetica", "B", 11)
	doc.SetFillColor(230, 230, 230)
	widths := []float64{35, 35, 80, 30}
	headers := []string{"From", "To", "Reason", "Status"}
	for i, h := range headers {
		doc.CellFormat(widths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)
	doc.SetFont("Helvetica", "", 11)
	row := []string{
		datefmt.Date(leave.FromDate),
		datefmt.Date(leave.ToDate),
		leave.Reason,
		models.DisplayStatus(leave.Status),
	}
	for i, v := range row {
		doc.CellFormat(widths[i], 9, v, "1", 0, "C", false, 0, "")
	}
	doc.Ln(14)

	// status line
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, fmt.Sprintf("This leave request has been %s.", leave.Status), "", 1, "L", false, 0, "")
	doc.Ln(20)

	// signature boxes
	labels := []string{"Student Signature", "Parent Signature", "Warden Signature"}
	x := doc.GetX()
	y := doc.GetY()
	for i, label := range labels {
		bx := x + float64(i)*62
		doc.Rect(bx, y, 55, 22, "D")
		doc.SetXY(bx, y+24)
		doc.SetFont("Helvetica", "", 9)
		doc.CellFormat(55, 5, label, "", 0, "C", false, 0, "")
	}
	doc.SetXY(x, y+36)

	// footer
	doc.SetFont("Helvetica", "I", 9)
	doc.SetTextColor(120, 120, 120)
	doc.CellFormat(0, 6, fmt.Sprintf("Generated on %s by the hostel leave management system.",
		datefmt.Timestamp(leave.UpdatedAt)), "", 1, "C", false, 0, "")

	out := filepath.Join(g.Dir, FileName(leave.ID))
	if err := doc.OutputFileAndClose(out); err != nil {
		return "", fmt.Errorf("write certificate: %w", err)
	}
	return path.Join(g.PublicBase, FileName(leave.ID)), nil
}
