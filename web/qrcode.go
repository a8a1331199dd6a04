package web

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// RenderQRCode renders a web-to-app challenge payload as a terminal QR
// code, using the same settings as the portal's own bundle (error
// correction level M, no quiet zone).
func RenderQRCode(payload string) (string, error) {
	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("cannot generate qr code: %w", err)
	}
	qr.DisableBorder = true
	return qr.ToSmallString(false), nil
}
