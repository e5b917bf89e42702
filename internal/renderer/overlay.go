package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

const (
	fontFamily     = "Helvetica"
	fontStyleBold  = "B"
	nameFontSize   = 35
	numberFontSize = 14
)

type rgb struct {
	r, g, b int
}

var (
	nameColor   = rgb{0, 0, 0}
	numberColor = rgb{51, 51, 51}
)

// OverlayEngine stamps the participant name and certificate number onto the
// first page of a template. It holds no state between calls.
type OverlayEngine struct{}

func NewOverlayEngine() *OverlayEngine {
	return &OverlayEngine{}
}

// Render returns a copy of the template with both strings drawn on page one,
// each horizontally centered on its anchor. Remaining pages are carried over
// untouched.
func (e *OverlayEngine) Render(template []byte, participantName string, certificateNumber string, nameAnchor Anchor, certAnchor Anchor) (out []byte, err error) {
	info, err := InspectTemplate(template)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %v", ErrTemplate, r)
		}
	}()

	source, err := importableTemplate(template)
	if err != nil {
		return nil, err
	}

	first := info.First()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: first.Width, Ht: first.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(source))

	for i, size := range info.Pages {
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: size.Width, Ht: size.Height})
		tpl := importer.ImportPageFromStream(pdf, &rs, i+1, "/MediaBox")
		importer.UseImportedTemplate(pdf, tpl, 0, 0, size.Width, size.Height)

		if i == 0 {
			translate := pdf.UnicodeTranslatorFromDescriptor("")

			nameX, nameY := ToDocumentSpace(nameAnchor.X, nameAnchor.Y, size.Width, size.Height)
			drawCentered(pdf, translate(participantName), nameFontSize, nameColor, nameX, nameY, size.Height)

			certX, certY := ToDocumentSpace(certAnchor.X, certAnchor.Y, size.Width, size.Height)
			drawCentered(pdf, translate(certificateNumber), numberFontSize, numberColor, certX, certY, size.Height)
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, pdf.Error())
	}

	var buf bytes.Buffer
	if outputErr := pdf.Output(&buf); outputErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, outputErr)
	}

	return buf.Bytes(), nil
}

func drawCentered(pdf *gofpdf.Fpdf, text string, size float64, color rgb, docX float64, docY float64, pageHeight float64) {
	pdf.SetFont(fontFamily, fontStyleBold, size)
	pdf.SetTextColor(color.r, color.g, color.b)
	x, y := centeredOrigin(docX, docY, pdf.GetStringWidth(text), pageHeight)
	pdf.Text(x, y, text)
}

// centeredOrigin turns a bottom-left anchor into the top-left baseline origin
// gofpdf draws from, shifted left by half the text width.
func centeredOrigin(docX float64, docY float64, textWidth float64, pageHeight float64) (float64, float64) {
	return docX - textWidth/2, pageHeight - docY
}
