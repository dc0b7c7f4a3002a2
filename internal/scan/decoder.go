package scan

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// Symbol is one detected barcode: its decoded payload and where it sits in
// the frame.
type Symbol struct {
	Payload string
	Bounds  image.Rectangle
}

// Decoder detects barcode symbols in a raster image. An empty slice means no
// symbol was found; errors are reserved for unusable input.
type Decoder interface {
	Decode(img image.Image) ([]Symbol, error)
}

// ZXingDecoder decodes product barcodes with gozxing. It tries the 1D
// UPC/EAN family first (retail product codes) and falls back to QR.
type ZXingDecoder struct {
	upcReader gozxing.Reader
	qrReader  gozxing.Reader
	hints     map[gozxing.DecodeHintType]interface{}
}

// NewZXingDecoder creates a decoder for retail product barcodes
func NewZXingDecoder() *ZXingDecoder {
	return &ZXingDecoder{
		upcReader: oned.NewMultiFormatUPCEANReader(nil),
		qrReader:  qrcode.NewQRCodeReader(),
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

// Decode returns the symbols detected in img. Unreadable frames yield an
// empty slice, not an error.
func (d *ZXingDecoder) Decode(img image.Image) ([]Symbol, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image")
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to build bitmap: %w", err)
	}

	for _, reader := range []gozxing.Reader{d.upcReader, d.qrReader} {
		result, err := reader.Decode(bmp, d.hints)
		if err != nil {
			continue // not found with this reader family
		}
		return []Symbol{{
			Payload: result.GetText(),
			Bounds:  boundsOf(result.GetResultPoints()),
		}}, nil
	}

	return []Symbol{}, nil
}

// boundsOf computes the bounding rectangle of the detector's result points.
func boundsOf(points []gozxing.ResultPoint) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}

	minX, minY := points[0].GetX(), points[0].GetY()
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.GetX() < minX {
			minX = p.GetX()
		}
		if p.GetX() > maxX {
			maxX = p.GetX()
		}
		if p.GetY() < minY {
			minY = p.GetY()
		}
		if p.GetY() > maxY {
			maxY = p.GetY()
		}
	}

	return image.Rect(int(minX), int(minY), int(maxX), int(maxY))
}
