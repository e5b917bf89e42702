package renderer

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	gofpdireader "github.com/phpdave11/gofpdi"
)

var disableConfigDir sync.Once

// importableTemplate returns bytes the page importer can read. The importer
// only understands classic xref tables, so documents written with a
// cross-reference stream or object streams are rewritten first.
func importableTemplate(template []byte) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %v", ErrTemplate, r)
		}
	}()

	if _, err := gofpdireader.NewPdfReaderFromStream(bytes.NewReader(template)); err == nil {
		return template, nil
	}

	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false

	var buf bytes.Buffer
	if optimizeErr := api.Optimize(bytes.NewReader(template), &buf, conf); optimizeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, optimizeErr)
	}

	return buf.Bytes(), nil
}

// PrepareTemplate validates an uploaded template and returns the bytes to
// store, already in a form Render can import without rewriting.
func PrepareTemplate(data []byte) ([]byte, error) {
	if _, err := InspectTemplate(data); err != nil {
		return nil, err
	}
	return importableTemplate(data)
}
