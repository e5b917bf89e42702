package issuance_controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	issuance_controller "github.com/sunthewhat/easy-cert-claim/api/controllers/issuance"
	certificatemodel "github.com/sunthewhat/easy-cert-claim/api/model/certificateModel"
	eventmodel "github.com/sunthewhat/easy-cert-claim/api/model/eventModel"
	"github.com/sunthewhat/easy-cert-claim/common/util"
	"github.com/sunthewhat/easy-cert-claim/internal/issuance"
	"github.com/sunthewhat/easy-cert-claim/internal/renderer"
)

type issuerFunc func(ctx context.Context, eventId uint, name string) (*issuance.Result, error)

func (f issuerFunc) Issue(ctx context.Context, eventId uint, name string) (*issuance.Result, error) {
	return f(ctx, eventId, name)
}

func decodeBody(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var response map[string]any
	require.NoError(t, json.Unmarshal(body, &response), "body: %s", body)
	return response
}

func TestIssuanceController_Issue(t *testing.T) {
	deadline := time.Date(2026, 1, 31, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name           string
		requestBody    string
		issuer         issuerFunc
		wantStatusCode int
		wantCode       string
	}{
		{
			name:           "invalid json",
			requestBody:    `{"event_id":`,
			wantStatusCode: fiber.StatusBadRequest,
			wantCode:       "validation",
		},
		{
			name:           "missing name",
			requestBody:    `{"event_id": 1}`,
			wantStatusCode: fiber.StatusBadRequest,
			wantCode:       "validation",
		},
		{
			name:           "missing event",
			requestBody:    `{"name": "Jane Doe"}`,
			wantStatusCode: fiber.StatusBadRequest,
			wantCode:       "validation",
		},
		{
			name:        "blank name reported by issuer",
			requestBody: `{"event_id": 1, "name": "   "}`,
			issuer: func(ctx context.Context, eventId uint, name string) (*issuance.Result, error) {
				return nil, issuance.ErrValidation
			},
			wantStatusCode: fiber.StatusBadRequest,
			wantCode:       "validation",
		},
		{
			name:        "event not found",
			requestBody: `{"event_id": 9, "name": "Jane Doe"}`,
			issuer: func(ctx context.Context, eventId uint, name string) (*issuance.Result, error) {
				return nil, issuance.ErrEventNotFound
			},
			wantStatusCode: fiber.StatusNotFound,
			wantCode:       "event_not_found",
		},
		{
			name:        "event inactive",
			requestBody: `{"event_id": 1, "name": "Jane Doe"}`,
			issuer: func(ctx context.Context, eventId uint, name string) (*issuance.Result, error) {
				return nil, issuance.ErrEventInactive
			},
			wantStatusCode: fiber.StatusForbidden,
			wantCode:       "event_inactive",
		},
		{
			name:        "event expired",
			requestBody: `{"event_id": 1, "name": "Jane Doe"}`,
			issuer: func(ctx context.Context, eventId uint, name string) (*issuance.Result, error) {
				return nil, &issuance.ExpiredError{Deadline: deadline}
			},
			wantStatusCode: fiber.StatusForbidden,
			wantCode:       "event_expired",
		},
		{
			name:        "name not whitelisted",
			requestBody: `{"event_id": 1, "name": "Budi Santosoo"}`,
			issuer: func(ctx context.Context, eventId uint, name string) (*issuance.Result, error) {
				return nil, issuance.ErrUnauthorized
			},
			wantStatusCode: fiber.StatusForbidden,
			wantCode:       "unauthorized",
		},
		{
			name:        "template missing",
			requestBody: `{"event_id": 1, "name": "Jane Doe"}`,
			issuer: func(ctx context.Context, eventId uint, name string) (*issuance.Result, error) {
				return nil, &issuance.IssuanceFailedError{Stage: "template", CertificateID: 3, Err: fmt.Errorf("%w: %w", issuance.ErrTemplateUnavailable, util.ErrTemplateNotFound)}
			},
			wantStatusCode: fiber.StatusNotFound,
			wantCode:       "template_not_found",
		},
		{
			name:        "template host down",
			requestBody: `{"event_id": 1, "name": "Jane Doe"}`,
			issuer: func(ctx context.Context, eventId uint, name string) (*issuance.Result, error) {
				return nil, &issuance.IssuanceFailedError{Stage: "template", CertificateID: 3, Err: fmt.Errorf("%w: template fetch returned status 503", issuance.ErrTemplateUnavailable)}
			},
			wantStatusCode: fiber.StatusInternalServerError,
			wantCode:       "template_unavailable",
		},
		{
			name:        "template fetch timed out",
			requestBody: `{"event_id": 1, "name": "Jane Doe"}`,
			issuer: func(ctx context.Context, eventId uint, name string) (*issuance.Result, error) {
				return nil, &issuance.IssuanceFailedError{Stage: "template", CertificateID: 3, Err: fmt.Errorf("%w: %w", issuance.ErrTemplateUnavailable, context.DeadlineExceeded)}
			},
			wantStatusCode: fiber.StatusInternalServerError,
			wantCode:       "template_unavailable",
		},
		{
			name:        "render failure",
			requestBody: `{"event_id": 1, "name": "Jane Doe"}`,
			issuer: func(ctx context.Context, eventId uint, name string) (*issuance.Result, error) {
				return nil, &issuance.IssuanceFailedError{Stage: "render", CertificateID: 3, Err: fmt.Errorf("%w: %w", issuance.ErrRender, renderer.ErrTemplate)}
			},
			wantStatusCode: fiber.StatusInternalServerError,
			wantCode:       "render_failed",
		},
		{
			name:        "storage failure",
			requestBody: `{"event_id": 1, "name": "Jane Doe"}`,
			issuer: func(ctx context.Context, eventId uint, name string) (*issuance.Result, error) {
				return nil, fmt.Errorf("%w: connection reset", issuance.ErrStorage)
			},
			wantStatusCode: fiber.StatusInternalServerError,
			wantCode:       "storage_failed",
		},
		{
			name:        "unexpected failure",
			requestBody: `{"event_id": 1, "name": "Jane Doe"}`,
			issuer: func(ctx context.Context, eventId uint, name string) (*issuance.Result, error) {
				return nil, errors.New("boom")
			},
			wantStatusCode: fiber.StatusInternalServerError,
			wantCode:       "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			called := false
			issuer := issuerFunc(func(ctx context.Context, eventId uint, name string) (*issuance.Result, error) {
				called = true
				if tt.issuer == nil {
					return nil, errors.New("issuer should not be called")
				}
				return tt.issuer(ctx, eventId, name)
			})

			ctrl := issuance_controller.NewIssuanceController(issuer, certificatemodel.NewMockCertificateRepository(), eventmodel.NewMockEventRepository(), "https://cert.example.com")
			app.Post("/issuance", ctrl.Issue)

			req := httptest.NewRequest("POST", "/issuance", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
			assert.Equal(t, tt.issuer != nil, called)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			response := decodeBody(t, body)
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tt.wantCode, response["code"])
			assert.NotEmpty(t, response["message"])
		})
	}
}

func TestIssuanceController_Issue_ExpiredMessage(t *testing.T) {
	deadline := time.Date(2026, 1, 31, 23, 59, 0, 0, time.UTC)
	issuer := issuerFunc(func(ctx context.Context, eventId uint, name string) (*issuance.Result, error) {
		return nil, &issuance.ExpiredError{Deadline: deadline}
	})

	app := fiber.New()
	ctrl := issuance_controller.NewIssuanceController(issuer, certificatemodel.NewMockCertificateRepository(), eventmodel.NewMockEventRepository(), "")
	app.Post("/issuance", ctrl.Issue)

	req := httptest.NewRequest("POST", "/issuance", bytes.NewBufferString(`{"event_id": 1, "name": "Jane Doe"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "The claim period ended at 2026-01-31T23:59:00Z", decodeBody(t, body)["message"])
}

func TestIssuanceController_Issue_Success(t *testing.T) {
	var gotEvent uint
	var gotName string
	issuer := issuerFunc(func(ctx context.Context, eventId uint, name string) (*issuance.Result, error) {
		gotEvent, gotName = eventId, name
		return &issuance.Result{
			Document:          []byte("%PDF-1.4 certificate"),
			CertificateNumber: "042/WS/2026",
			CertificateID:     42,
			ParticipantName:   "Jane Doe",
			EventName:         "Go Workshop",
		}, nil
	})

	app := fiber.New()
	ctrl := issuance_controller.NewIssuanceController(issuer, certificatemodel.NewMockCertificateRepository(), eventmodel.NewMockEventRepository(), "")
	app.Post("/issuance", ctrl.Issue)

	req := httptest.NewRequest("POST", "/issuance", bytes.NewBufferString(`{"event_id": 5, "name": " Jane Doe "}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, uint(5), gotEvent)
	assert.Equal(t, " Jane Doe ", gotName)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Certificate-Jane_Doe.pdf"`, resp.Header.Get("Content-Disposition"))
	assert.Equal(t, "042/WS/2026", resp.Header.Get(issuance_controller.HeaderCertificateNumber))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 certificate", string(body))
}
