package media

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"
)

// QRCode renders content as a QR code scaled to sizePx square, returned as
// PNG bytes. Video pages embed one of these instead of the video itself.
func QRCode(content string, sizePx int) ([]byte, error) {
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("media: encoding QR code: %w", err)
	}
	scaled, err := barcode.Scale(code, sizePx, sizePx)
	if err != nil {
		return nil, fmt.Errorf("media: scaling QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("media: encoding QR PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// Code128 renders content as a Code 128 strip of the given pixel size,
// returned as PNG bytes. The cover page carries the report id this way.
func Code128(content string, widthPx, heightPx int) ([]byte, error) {
	code, err := code128.Encode(content)
	if err != nil {
		return nil, fmt.Errorf("media: encoding Code 128: %w", err)
	}
	scaled, err := barcode.Scale(code, widthPx, heightPx)
	if err != nil {
		return nil, fmt.Errorf("media: scaling Code 128: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("media: encoding Code 128 PNG: %w", err)
	}
	return buf.Bytes(), nil
}
