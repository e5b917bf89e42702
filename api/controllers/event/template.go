package event_controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sunthewhat/easy-cert-claim/common/util"
	"github.com/sunthewhat/easy-cert-claim/internal/renderer"
)

const maxTemplateSize = 20 << 20

// readTemplate loads an uploaded file, checks that it is a PDF with at least
// one page and returns it in the form the overlay imports.
func readTemplate(file *multipart.FileHeader) ([]byte, error) {
	if file.Size > maxTemplateSize {
		return nil, fmt.Errorf("template is larger than %d MB", maxTemplateSize>>20)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return renderer.PrepareTemplate(data)
}

func templateObjectName(filename string) string {
	base := strings.TrimSuffix(filename, ".pdf")
	base = strings.TrimSuffix(base, ".PDF")
	return fmt.Sprintf("templates/%d-%s-%s.pdf", time.Now().Unix(), uuid.NewString(), util.SanitizeFilename(base))
}

func (ctrl *EventController) uploadTemplate(ctx context.Context, file *multipart.FileHeader) (string, error) {
	data, err := readTemplate(file)
	if err != nil {
		return "", err
	}
	return ctrl.templates.Upload(ctx, templateObjectName(file.Filename), data)
}

// discardTemplate removes a template that is no longer referenced. Failures
// only leave an unused object behind.
func (ctrl *EventController) discardTemplate(ctx context.Context, location string) {
	if location == "" {
		return
	}
	if err := ctrl.templates.Remove(ctx, location); err != nil {
		slog.Warn("Event template cleanup failed", "error", err, "template", location)
	}
}
