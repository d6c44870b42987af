package ui

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/skip2/go-qrcode"
)

// encodeQR renders content as a square QR code of the given pixel size
func encodeQR(content string, size int) (image.Image, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return q.Image(size), nil
}

// qrView shows the QR code of a link and re-encodes only when it changes
type qrView struct {
	image   *canvas.Image
	content string
}

func newQRView() *qrView {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScalePixels
	img.SetMinSize(fyne.NewSize(QRCodeSize, QRCodeSize))
	img.Hide()
	return &qrView{image: img}
}

// SetContent updates the code. Empty or unencodable content hides it.
func (v *qrView) SetContent(content string) error {
	if content == v.content {
		return nil
	}
	v.content = content
	if content == "" {
		v.image.Hide()
		return nil
	}

	img, err := encodeQR(content, QRCodeSize)
	if err != nil {
		v.image.Hide()
		return err
	}
	v.image.Image = img
	v.image.Refresh()
	v.image.Show()
	return nil
}
