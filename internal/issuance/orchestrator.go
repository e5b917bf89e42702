package issuance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sunthewhat/easy-cert-claim/internal/renderer"
	"github.com/sunthewhat/easy-cert-claim/type/shared/model"
)

type EventReader interface {
	GetById(id uint) (*model.Event, error)
}

type WhitelistReader interface {
	ListByEvent(eventId uint) ([]*model.Whitelist, error)
}

// CertificateStore is the write side of issuance. Reserve must hand out a
// fresh, store-assigned id on every call, including under concurrent callers.
type CertificateStore interface {
	Reserve(eventId uint, name string) (*model.Certificate, error)
	SetCertificateNumber(id uint, certNo string) error
	Delete(id uint) error
}

type TemplateFetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

type TemplateRenderer interface {
	Render(template []byte, participantName string, certificateNumber string, nameAnchor renderer.Anchor, certAnchor renderer.Anchor) ([]byte, error)
}

type DocumentSigner interface {
	SignPDF(pdfBytes []byte, certificateNumber string, participantName string) ([]byte, error)
}

type Result struct {
	Document          []byte
	CertificateNumber string
	CertificateID     uint
	ParticipantName   string
	EventName         string
}

type Orchestrator struct {
	events       EventReader
	validator    *WhitelistValidator
	certificates CertificateStore
	allocator    *NumberAllocator
	fetcher      TemplateFetcher
	renderer     TemplateRenderer
	signer       DocumentSigner
	now          func() time.Time
}

type Option func(*Orchestrator)

func WithSigner(signer DocumentSigner) Option {
	return func(o *Orchestrator) {
		o.signer = signer
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

func NewOrchestrator(
	events EventReader,
	whitelist WhitelistReader,
	certificates CertificateStore,
	fetcher TemplateFetcher,
	templateRenderer TemplateRenderer,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		events:       events,
		validator:    NewWhitelistValidator(whitelist),
		certificates: certificates,
		allocator:    NewNumberAllocator(certificates),
		fetcher:      fetcher,
		renderer:     templateRenderer,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Issue runs the whole claim for one participant. Checks that fail before the
// certificate is reserved write nothing. Once the record exists, every failing
// exit deletes it again before the error is returned.
func (o *Orchestrator) Issue(ctx context.Context, eventId uint, participantName string) (result *Result, err error) {
	name := strings.TrimSpace(participantName)
	if eventId == 0 || name == "" {
		return nil, ErrValidation
	}

	event, err := o.events.GetById(eventId)
	if err != nil {
		slog.Error("Issuance GetEvent failed", "error", err, "event_id", eventId)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if gateErr := CheckIssuable(event, o.now()); gateErr != nil {
		slog.Warn("Issuance rejected by event gate", "event_id", eventId, "reason", gateErr)
		return nil, gateErr
	}

	authorized, err := o.validator.IsAuthorized(event.ID, name)
	if err != nil {
		slog.Error("Issuance whitelist lookup failed", "error", err, "event_id", eventId)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if !authorized {
		slog.Warn("Issuance rejected unlisted name", "event_id", eventId, "name", name)
		return nil, ErrUnauthorized
	}

	cert, err := o.certificates.Reserve(event.ID, name)
	if err != nil {
		slog.Error("Issuance reserve certificate failed", "error", err, "event_id", eventId)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	stage := "template"
	completed := false
	defer func() {
		if completed {
			return
		}
		if r := recover(); r != nil {
			o.release(cert.ID)
			panic(r)
		}
		o.release(cert.ID)
		result = nil
		err = &IssuanceFailedError{Stage: stage, CertificateID: cert.ID, Err: err}
	}()

	template, err := o.fetcher.Fetch(ctx, event.TemplateURL)
	if err != nil {
		slog.Error("Issuance template fetch failed", "error", err, "event_id", eventId, "template", event.TemplateURL)
		return nil, fmt.Errorf("%w: %w", ErrTemplateUnavailable, err)
	}

	stage = "numbering"
	certNo, err := o.allocator.Allocate(cert.ID, EventPrefix(event))
	if err != nil {
		slog.Error("Issuance allocate number failed", "error", err, "certificate_id", cert.ID)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	stage = "render"
	document, err := o.renderer.Render(
		template,
		name,
		certNo,
		renderer.Anchor{X: event.NameX, Y: event.NameY},
		renderer.Anchor{X: event.CertX, Y: event.CertY},
	)
	if err != nil {
		slog.Error("Issuance render failed", "error", err, "certificate_id", cert.ID)
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	if o.signer != nil {
		stage = "sign"
		document, err = o.signer.SignPDF(document, certNo, name)
		if err != nil {
			slog.Error("Issuance sign failed", "error", err, "certificate_id", cert.ID)
			return nil, fmt.Errorf("%w: %v", ErrRender, err)
		}
	}

	completed = true

	slog.Info("Issuance completed",
		"event_id", event.ID,
		"certificate_id", cert.ID,
		"cert_no", certNo,
		"size", len(document))

	return &Result{
		Document:          document,
		CertificateNumber: certNo,
		CertificateID:     cert.ID,
		ParticipantName:   name,
		EventName:         event.EventName,
	}, nil
}

// release undoes a reservation. A failed delete is logged only; the caller
// still receives the error that caused the rollback.
func (o *Orchestrator) release(certificateId uint) {
	if err := o.certificates.Delete(certificateId); err != nil {
		slog.Error("Issuance cleanup failed to delete reserved certificate", "error", err, "certificate_id", certificateId)
		return
	}
	slog.Info("Issuance reserved certificate removed", "certificate_id", certificateId)
}
