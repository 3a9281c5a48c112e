package constants

import "strings"

// Format discriminates which text-extraction strategy applies to a document.
type Format string

const (
	IMAGE       Format = "IMAGE"
	PDF         Format = "PDF"
	SPREADSHEET Format = "SPREADSHEET"
)

// Formats holds the supported document formats.
var Formats = []Format{IMAGE, PDF, SPREADSHEET}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized file extension to a document format.
// Anything that is neither a PDF nor a workbook is treated as an image;
// callers relying on filename-based dispatch get exactly this mapping.
func MapExtToFormat(ext string) Format {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "xlsx", "xls":
		return SPREADSHEET
	default:
		return IMAGE
	}
}
