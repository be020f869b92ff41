package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

type htmlLine struct {
	Text    string
	Heading bool
	Section bool
}

type htmlView struct {
	Doc         Document
	Traveler    string
	GeneratedAt string
	Lines       []htmlLine
}

var itineraryHTML = template.Must(template.New("itinerary").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Doc.Destination}} itinerary</title>
<style>
body{font-family:Helvetica,Arial,sans-serif;color:#1a1a1a;max-width:760px;margin:0 auto;padding:24px}
header{background:#0d1825;color:#fff;padding:16px 20px;border-radius:6px}
header p{color:#d4a843;margin:4px 0 0}
.note{background:#fff8e1;border:1px solid #d4a843;color:#825a14;font-size:12px;padding:8px;margin:16px 0;text-align:center}
h2{background:#0d1825;color:#fff;font-size:15px;padding:6px 10px;margin-top:22px}
.section{font-weight:bold;color:#0d1825;margin:8px 0 2px}
.detail{color:#3c3c3c;font-size:13px;margin:0 0 2px 12px}
table td{padding:2px 12px 2px 0}
</style>
</head>
<body>
<header><h1>Wayfarer</h1><p>Your Travel Itinerary · {{.Doc.Destination}}</p></header>
<div class="note">This is NOT a booking confirmation. Prices and opening hours are estimates; please verify before you travel.</div>
<table>
<tr><td>Traveler</td><td><strong>{{.Traveler}}</strong></td></tr>
<tr><td>Destination</td><td><strong>{{.Doc.Destination}}</strong></td></tr>
{{if gt .Doc.Duration 0}}<tr><td>Duration</td><td><strong>{{.Doc.Duration}} days</strong></td></tr>{{end}}
<tr><td>Generated</td><td><strong>{{.GeneratedAt}}</strong></td></tr>
</table>
{{range .Lines}}{{if .Heading}}<h2>{{.Text}}</h2>
{{else if .Section}}<p class="section">{{.Text}}</p>
{{else}}<p class="detail">{{.Text}}</p>
{{end}}{{end}}
</body>
</html>
`))

// RenderItineraryHTML is the fallback when the PDF cannot be produced. Unlike
// the PDF it keeps emoji.
func RenderItineraryHTML(doc Document) ([]byte, error) {
	view := htmlView{
		Doc:         doc,
		Traveler:    doc.TravelerName,
		GeneratedAt: doc.generatedAt().Format("02 Jan 2006, 15:04 UTC"),
	}
	if view.Traveler == "" {
		view.Traveler = "Guest Traveler"
	}
	for _, line := range strings.Split(doc.Text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		view.Lines = append(view.Lines, htmlLine{
			Text:    trimmed,
			Heading: isDayHeading(trimmed),
			Section: isSectionLine(trimmed),
		})
	}

	var buf bytes.Buffer
	if err := itineraryHTML.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render itinerary html: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderedDocument is a document in whichever format could be produced.
type RenderedDocument struct {
	Data        []byte
	ContentType string
	Extension   string
	Format      string
}

// RenderDocument prefers PDF and falls back to HTML.
func RenderDocument(doc Document) (RenderedDocument, error) {
	pdfBytes, pdfErr := RenderItineraryPDF(doc)
	if pdfErr == nil {
		return RenderedDocument{Data: pdfBytes, ContentType: "application/pdf", Extension: "pdf", Format: "pdf"}, nil
	}
	htmlBytes, err := RenderItineraryHTML(doc)
	if err != nil {
		return RenderedDocument{}, fmt.Errorf("pdf: %v; html: %w", pdfErr, err)
	}
	return RenderedDocument{Data: htmlBytes, ContentType: "text/html; charset=utf-8", Extension: "html", Format: "html"}, nil
}
