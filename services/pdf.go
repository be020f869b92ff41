package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/jung-kurt/gofpdf"
)

// Document is an itinerary ready to be rendered for download or email.
type Document struct {
	TravelerName string
	Destination  string
	Duration     int
	Text         string
	GeneratedBy  string
	GeneratedAt  time.Time
}

func (d Document) generatedAt() time.Time {
	if d.GeneratedAt.IsZero() {
		return time.Now().UTC()
	}
	return d.GeneratedAt
}

// FileName is the attachment name for the document, without extension.
func (d Document) FileName() string {
	dest := fileSlug(d.Destination)
	if dest == "" {
		dest = "trip"
	}
	return fmt.Sprintf("wayfarer-%s-itinerary", dest)
}

// fileSlug keeps ASCII letters and digits; every other run of characters
// becomes a single hyphen.
func fileSlug(s string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
			continue
		}
		hyphen = true
	}
	return b.String()
}

// RenderItineraryPDF renders the document to PDF bytes in memory.
func RenderItineraryPDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfSafe(s)) }

	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetLineWidth(0.3)
		pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8,
			text(fmt.Sprintf("Generated by Wayfarer · Not a booking confirmation · Page %d", pdf.PageNo())),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Wayfarer", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, text("Your Travel Itinerary · "+doc.Destination), "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(255, 248, 225)
	pdf.SetDrawColor(212, 168, 67)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 10, "FD")
	pdf.SetXY(23, y+2)
	pdf.MultiCell(164, 3, "This is NOT a booking confirmation. Prices and opening hours are estimates; please verify before you travel.", "", "C", false)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.SetY(y + 14)

	// ── Section Helper ───────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+text(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, text(value), "", 1, "L", false, 0, "")
	}

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	name := doc.TravelerName
	if name == "" {
		name = "Guest Traveler"
	}
	row("Traveler", name)
	row("Destination", doc.Destination)
	if doc.Duration > 0 {
		row("Duration", fmt.Sprintf("%d days", doc.Duration))
	}
	row("Generated", doc.generatedAt().Format("02 Jan 2006, 15:04 UTC"))
	if doc.GeneratedBy != "" {
		row("Prepared by", doc.GeneratedBy)
	}
	pdf.Ln(4)

	// ── Itinerary Body ────────────────────────────────────────
	for _, line := range strings.Split(doc.Text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			pdf.Ln(2)
		case isDayHeading(trimmed):
			pdf.Ln(2)
			sectionHeader(trimmed)
		case isSectionLine(trimmed):
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(13, 24, 37)
			pdf.MultiCell(170, 5, text(trimmed), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(60, 60, 60)
			pdf.MultiCell(170, 4.5, text(trimmed), "", "L", false)
		}
	}

	// ── Write to buffer ───────────────────────────────────────
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func isDayHeading(line string) bool {
	upper := strings.ToUpper(line)
	return strings.HasPrefix(upper, "DAY ") && strings.Contains(line, ":")
}

// isSectionLine matches the "MORNING: ..." style lines of a rendered itinerary,
// with or without a leading emoji.
func isSectionLine(line string) bool {
	label, _, ok := strings.Cut(pdfSafe(line), ":")
	if !ok {
		return false
	}
	label = strings.TrimSpace(label)
	return label != "" && label == strings.ToUpper(label) && strings.IndexFunc(label, unicode.IsLetter) >= 0
}

var pdfReplacer = strings.NewReplacer(
	"→", "->",
	"—", "-",
	"–", "-",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// pdfSafe drops characters the core PDF fonts cannot draw, such as emoji.
func pdfSafe(s string) string {
	s = pdfReplacer.Replace(s)
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r > 0xFF || (r < 0x20 && r != '\t') {
			return -1
		}
		return r
	}, s))
}
