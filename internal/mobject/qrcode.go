package mobject

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// NewQRCode encodes content as a QR symbol size units wide.
func NewQRCode(id, content string, size float64) (*Object, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qrcode %s: %w", id, err)
	}
	q.DisableBorder = true

	o := newObject(id, QRCode)
	o.Modules = q.Bitmap()
	o.Width, o.Height = size, size
	o.Fill = true
	return o, nil
}
