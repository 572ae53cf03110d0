package constants

import "strings"

// FileTypes holds the allowed file types for the format field in ExtractJob.
var FileTypes = []string{"PDF", "IMAGE"}

const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// ContentTypePDF is the only PDF content type we accept.
const ContentTypePDF = "application/pdf"

// ImageContentTypes holds the image content types the OCR path understands.
var ImageContentTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/jpg":  {},
	"image/gif":  {},
	"image/heic": {},
	"image/heif": {},
}

// AllowedExtensions holds the default allowed file extensions for paystub ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"heic": {},
}

// ExtContentTypes maps normalized extensions to declared content types.
var ExtContentTypes = map[string]string{
	"pdf":  ContentTypePDF,
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"heic": "image/heic",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapContentTypeToFormat routes a declared content type to PDF or IMAGE.
// Returns "" for anything we do not handle. Parameters after a semicolon
// (e.g. "image/png; charset=binary") are ignored.
func MapContentTypeToFormat(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == ContentTypePDF {
		return PDF
	}
	if _, ok := ImageContentTypes[ct]; ok {
		return IMAGE
	}
	return ""
}
