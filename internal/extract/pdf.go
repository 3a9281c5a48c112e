package extract

import (
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/ranger-pm/ranger-core/constants"
)

// extractPDF pulls text page by page and concatenates it in page order with
// no separator. A page whose text extraction yields nothing contributes "".
func (e *Extractor) extractPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", &DecodeError{Kind: constants.PDF, Err: err}
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			e.logger.Warn("close pdf document", "error", cerr)
		}
	}()

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		page, perr := doc.Text(i)
		if perr != nil {
			e.logger.Warn("pdf page text failed", "page", i, "error", perr)
			continue
		}
		b.WriteString(page)
	}
	return b.String(), nil
}
