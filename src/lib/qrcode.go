package lib

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/yeqown/go-qrcode"
)

// BookingQRCode encodes the booking reference as a JPEG QR code.
func BookingQRCode(bookingID, packageID string) ([]byte, error) {
	content, err := json.Marshal(map[string]string{
		"bookingId": bookingID,
		"packageId": packageID,
	})
	if err != nil {
		return nil, err
	}
	qrc, err := qrcode.New(string(content))
	if err != nil {
		return nil, fmt.Errorf("could not generate QRCode: %w", err)
	}
	var buf bytes.Buffer
	if err := qrc.SaveTo(&buf); err != nil {
		return nil, fmt.Errorf("could not encode QRCode: %w", err)
	}
	return buf.Bytes(), nil
}
