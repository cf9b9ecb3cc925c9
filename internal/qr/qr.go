package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 256

// PNG encodes content as a QR code image. Size is the pixel width/height;
// zero means the default card size.
func PNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qr content must not be empty")
	}

	if size <= 0 {
		size = defaultSize
	}

	return qrcode.Encode(content, qrcode.Medium, size)
}
