package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/skip2/go-qrcode"
)

// BuildBadgeBook renders one A4 badge page per employee with a scannable
// vCard QR code. The QR images live in memory only.
func BuildBadgeBook(rows []DirectoryRow) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")

	for i, entry := range rows {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 26)
		pdf.CellFormat(0, 16, entry.FullName, "", 1, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 15)
		pdf.CellFormat(0, 9, entry.Role, "", 1, "C", false, 0, "")
		if entry.Department != "" {
			pdf.CellFormat(0, 9, entry.Department, "", 1, "C", false, 0, "")
		}
		if entry.HireDate != "" {
			pdf.CellFormat(0, 9, fmt.Sprintf("Since %s", entry.HireDate), "", 1, "C", false, 0, "")
		}

		png, err := qrcode.Encode(vCard(entry), qrcode.Medium, 512)
		if err != nil {
			return nil, fmt.Errorf("encoding qr code for %q: %w", entry.FullName, err)
		}

		imageName := fmt.Sprintf("badge-qr-%d", i)
		options := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(imageName, options, bytes.NewReader(png))

		// Center a 70mm code below the text block. A4 is 210mm wide.
		pdf.ImageOptions(imageName, (210-70)/2, 80, 70, 70, false, options, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering badge book: %w", err)
	}

	return &buf, nil
}

func vCard(entry DirectoryRow) string {
	var b strings.Builder

	b.WriteString("BEGIN:VCARD\nVERSION:3.0\n")
	fmt.Fprintf(&b, "FN:%s\n", entry.FullName)
	fmt.Fprintf(&b, "N:%s;%s;;;\n", entry.LastName, entry.FirstName)
	if entry.Role != "" {
		fmt.Fprintf(&b, "TITLE:%s\n", entry.Role)
	}
	if entry.Department != "" {
		fmt.Fprintf(&b, "ORG:%s\n", entry.Department)
	}
	if entry.Phone != "" {
		fmt.Fprintf(&b, "TEL;TYPE=WORK:%s\n", entry.Phone)
	}
	if entry.Email != "" {
		fmt.Fprintf(&b, "EMAIL;TYPE=WORK:%s\n", entry.Email)
	}
	b.WriteString("END:VCARD")

	return b.String()
}
