package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapExtToFormat(t *testing.T) {
	tests := []struct {
		ext  string
		want Format
	}{
		{".pdf", PDF},
		{"pdf", PDF},
		{".PDF", PDF},
		{".xlsx", SPREADSHEET},
		{".xls", SPREADSHEET},
		{".XLSX", SPREADSHEET},
		{".jpg", IMAGE},
		{".jpeg", IMAGE},
		{".png", IMAGE},
		{".heic", IMAGE},
		{"", IMAGE},
		{".docx", IMAGE}, // anything unrecognized falls back to image
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MapExtToFormat(tt.ext), "ext %q", tt.ext)
	}
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "xlsx", NormalizeExt("xlsx"))
	assert.Equal(t, "", NormalizeExt("."))
}
