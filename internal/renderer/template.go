package renderer

import (
	"bytes"
	"errors"
	"fmt"

	digitorus_pdf "github.com/digitorus/pdf"
)

var ErrTemplate = errors.New("invalid certificate template")

type PageSize struct {
	Width  float64
	Height float64
}

// TemplateInfo describes the pages of a parsed template.
type TemplateInfo struct {
	Pages []PageSize
}

func (t *TemplateInfo) First() PageSize {
	return t.Pages[0]
}

// InspectTemplate parses raw PDF bytes and reads the MediaBox of every page.
func InspectTemplate(data []byte) (info *TemplateInfo, err error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrTemplate)
	}

	defer func() {
		if r := recover(); r != nil {
			info = nil
			err = fmt.Errorf("%w: %v", ErrTemplate, r)
		}
	}()

	reader, readErr := digitorus_pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if readErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, readErr)
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("%w: document has no pages", ErrTemplate)
	}

	info = &TemplateInfo{Pages: make([]PageSize, 0, numPages)}
	for i := 1; i <= numPages; i++ {
		size, sizeErr := mediaBox(reader.Page(i))
		if sizeErr != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrTemplate, i, sizeErr)
		}
		info.Pages = append(info.Pages, size)
	}

	return info, nil
}

// mediaBox resolves the page MediaBox, walking up the page tree when the
// page inherits it.
func mediaBox(page digitorus_pdf.Page) (PageSize, error) {
	node := page.V
	box := node.Key("MediaBox")
	for box.IsNull() {
		node = node.Key("Parent")
		if node.IsNull() {
			return PageSize{}, errors.New("missing MediaBox")
		}
		box = node.Key("MediaBox")
	}

	if box.Kind() != digitorus_pdf.Array || box.Len() != 4 {
		return PageSize{}, errors.New("malformed MediaBox")
	}

	width := box.Index(2).Float64() - box.Index(0).Float64()
	height := box.Index(3).Float64() - box.Index(1).Float64()
	if width <= 0 || height <= 0 {
		return PageSize{}, fmt.Errorf("degenerate MediaBox %.2fx%.2f", width, height)
	}

	return PageSize{Width: width, Height: height}, nil
}
