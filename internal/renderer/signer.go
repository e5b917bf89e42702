package renderer

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	digitorus_pdf "github.com/digitorus/pdf"
	"github.com/digitorus/pdfsign/sign"
)

type SignerConfig struct {
	Enabled  bool
	CertPath string
	KeyPath  string
}

type CertificateSigner struct {
	certificate *x509.Certificate
	privateKey  *rsa.PrivateKey
	enabled     bool
}

func NewCertificateSigner(cfg SignerConfig) (*CertificateSigner, error) {
	if !cfg.Enabled {
		slog.Info("PDF signing disabled in configuration")
		return &CertificateSigner{enabled: false}, nil
	}

	if cfg.CertPath == "" || cfg.KeyPath == "" {
		return nil, fmt.Errorf("signing enabled but certificate or key path not configured")
	}

	certPEM, err := os.ReadFile(cfg.CertPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file %s: %w", cfg.CertPath, err)
	}

	keyPEM, err := os.ReadFile(cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file %s: %w", cfg.KeyPath, err)
	}

	certificate, privateKey, err := parseSigningMaterial(certPEM, keyPEM)
	if err != nil {
		return nil, err
	}

	slog.Info("Certificate signer initialized successfully",
		"cert_subject", certificate.Subject.String(),
		"cert_expiry", certificate.NotAfter)

	return &CertificateSigner{
		certificate: certificate,
		privateKey:  privateKey,
		enabled:     true,
	}, nil
}

func parseSigningMaterial(certPEM []byte, keyPEM []byte) (*x509.Certificate, *rsa.PrivateKey, error) {
	certBlock, _ := pem.Decode(certPEM)
	if certBlock == nil {
		return nil, nil, fmt.Errorf("failed to decode certificate PEM")
	}

	certificate, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse certificate: %w", err)
	}

	keyBlock, _ := pem.Decode(keyPEM)
	if keyBlock == nil {
		return nil, nil, fmt.Errorf("failed to decode private key PEM")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(keyBlock.Bytes)
	if err != nil {
		// PKCS8 fallback
		key, err := x509.ParsePKCS8PrivateKey(keyBlock.Bytes)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		var ok bool
		privateKey, ok = key.(*rsa.PrivateKey)
		if !ok {
			return nil, nil, fmt.Errorf("private key is not RSA format")
		}
	}

	return certificate, privateKey, nil
}

// SignPDF signs an issued certificate. Signing problems are logged and the
// unsigned document is returned so a claim never fails on the signature.
func (s *CertificateSigner) SignPDF(pdfBytes []byte, certificateNumber string, participantName string) ([]byte, error) {
	if !s.enabled {
		return pdfBytes, nil
	}

	if len(pdfBytes) == 0 {
		return pdfBytes, fmt.Errorf("empty PDF bytes")
	}

	signData := sign.SignData{
		Signature: sign.SignDataSignature{
			Info: sign.SignDataSignatureInfo{
				Name:     "Easy Cert Claim",
				Location: "Digital Certificate Platform",
				Reason:   fmt.Sprintf("Certificate %s issued to %s", certificateNumber, participantName),
				Date:     time.Now(),
			},
			CertType:   sign.CertificationSignature,
			DocMDPPerm: sign.AllowFillingExistingFormFieldsAndSignaturesPerms,
		},
		Signer:      s.privateKey,
		Certificate: s.certificate,
	}

	inputReader := bytes.NewReader(pdfBytes)
	var outputBuffer bytes.Buffer

	var signingError error
	func() {
		defer func() {
			if r := recover(); r != nil {
				signingError = fmt.Errorf("panic during signing: %v", r)
			}
		}()

		pdfReader, err := digitorus_pdf.NewReader(inputReader, int64(len(pdfBytes)))
		if err != nil {
			signingError = err
			return
		}

		inputReader.Seek(0, io.SeekStart)

		signingError = sign.Sign(inputReader, &outputBuffer, pdfReader, int64(len(pdfBytes)), signData)
	}()

	if signingError != nil || outputBuffer.Len() == 0 {
		slog.Warn("PDF signing failed or produced empty output, returning unsigned PDF",
			"cert_no", certificateNumber,
			"error", signingError)
		return pdfBytes, nil
	}

	slog.Info("PDF signed successfully",
		"cert_no", certificateNumber,
		"original_size", len(pdfBytes),
		"signed_size", len(outputBuffer.Bytes()))

	return outputBuffer.Bytes(), nil
}

func (s *CertificateSigner) IsEnabled() bool {
	return s.enabled
}
