package renderer

import (
	"bytes"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/require"
)

// buildTemplate produces a PDF with one page per size, each carrying a bit of
// background text so imported pages are not empty.
func buildTemplate(t testing.TB, sizes ...PageSize) []byte {
	t.Helper()
	require.NotEmpty(t, sizes)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: sizes[0].Width, Ht: sizes[0].Height},
	})
	pdf.SetFont("Helvetica", "", 12)
	for i, size := range sizes {
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: size.Width, Ht: size.Height})
		pdf.Text(20, 40, "Template page")
		if i > 0 {
			pdf.Text(20, 60, "Appendix")
		}
	}

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	return buf.Bytes()
}
