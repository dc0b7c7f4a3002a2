package scan

import (
	"image"
	"log"
)

// Mode selects the acquisition strategy.
type Mode string

const (
	// ModeFull runs the ordered preprocessing variant pipeline
	ModeFull Mode = "full"
	// ModeRaw decodes the frame directly with no preprocessing
	ModeRaw Mode = "raw"
)

// Scanner extracts a barcode payload from a camera frame. The decoder is an
// injected collaborator so the variant pipeline stays testable without a
// real detector.
type Scanner struct {
	decoder Decoder
	mode    Mode
}

// NewScanner creates a scanner in the given mode
func NewScanner(decoder Decoder, mode Mode) *Scanner {
	if mode != ModeRaw {
		mode = ModeFull
	}
	return &Scanner{
		decoder: decoder,
		mode:    mode,
	}
}

// DetectBarcode returns the payload of the first barcode found in the frame.
// In full mode it tries an ordered list of image variants, cheapest transform
// first, and returns the first symbol of the first variant that yields any
// detection; it never aggregates across variants. Unreadable or malformed
// frames report ("", false), never an error.
func (s *Scanner) DetectBarcode(frame image.Image) (string, bool) {
	if frame == nil || frame.Bounds().Empty() {
		return "", false
	}

	if s.mode == ModeRaw {
		return s.tryDecode(frame)
	}

	gray := Grayscale(frame)
	variants := []image.Image{
		gray,
		EqualizeHist(gray),
		GaussianBlur(gray),
		AdaptiveThreshold(gray, 91, 11),
	}

	for _, variant := range variants {
		if payload, ok := s.tryDecode(variant); ok {
			return payload, true
		}
	}

	return "", false
}

func (s *Scanner) tryDecode(img image.Image) (string, bool) {
	symbols, err := s.decoder.Decode(img)
	if err != nil {
		log.Printf("[SCAN] Decoder error: %v", err)
		return "", false
	}
	if len(symbols) == 0 {
		return "", false
	}
	return symbols[0].Payload, true
}
