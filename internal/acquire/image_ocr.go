package acquire

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"strings"
	"time"

	"github.com/gen2brain/heic"

	"github.com/Volpestyle/paystub-extractor/constants"
)

// imageOCRStrategy runs optical recognition directly over an uploaded image.
// There is no text layer to try first, so OCR is mandatory here.
type imageOCRStrategy struct {
	engine Engine
}

func (imageOCRStrategy) Name() string { return "image-ocr" }

func (s imageOCRStrategy) Extract(ctx context.Context, data []byte) (Result, Outcome, error) {
	start := time.Now()

	pngData, err := toPNG(data)
	if err != nil {
		return Result{SourceType: constants.IMAGE, Method: "image-ocr"}, OutcomeFailed, err
	}
	txt, err := s.engine.Recognize(ctx, pngData)
	if err != nil {
		return Result{SourceType: constants.IMAGE, Method: "image-ocr"}, OutcomeFailed, fmt.Errorf("ocr: %w", err)
	}

	res := Result{
		Text:       txt,
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Duration:   time.Since(start),
	}
	if strings.TrimSpace(txt) == "" {
		return res, OutcomeInsufficient, nil
	}
	return res, OutcomeOK, nil
}

// toPNG re-encodes any supported image as PNG for the OCR engine.
// HEIC/HEIF (common on iPhones) is not handled by the standard image package.
func toPNG(data []byte) ([]byte, error) {
	var img image.Image
	var err error
	if isHEIC(data) {
		img, err = heic.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode heic: %w", err)
		}
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// isHEIC sniffs the ISO-BMFF ftyp box for HEIC/HEIF brands.
func isHEIC(data []byte) bool {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	switch string(data[8:12]) {
	case "heic", "heix", "heim", "heis", "hevc", "mif1", "msf1":
		return true
	}
	return false
}
