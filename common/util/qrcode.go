package util

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// VerificationURL is the public page a printed certificate's QR code opens.
func VerificationURL(verifyHost string, certificateId uint) string {
	return fmt.Sprintf("%s/verify/%d", strings.TrimRight(verifyHost, "/"), certificateId)
}

// VerificationQR renders the verification URL as a PNG.
func VerificationQR(verifyHost string, certificateId uint) ([]byte, error) {
	png, err := qrcode.Encode(VerificationURL(verifyHost, certificateId), qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}
