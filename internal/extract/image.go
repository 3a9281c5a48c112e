package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/ranger-pm/ranger-core/constants"
)

// extractImage runs OCR over an encoded image. An image with no discernible
// text yields "" and no error; only an undecodable payload fails the call.
func (e *Extractor) extractImage(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c := e.newClient()
	defer func() {
		if cerr := c.Close(); cerr != nil {
			e.logger.Warn("close ocr client", "error", cerr)
		}
	}()

	if err := c.SetImageFromBytes(data); err != nil {
		return "", &DecodeError{Kind: constants.IMAGE, Err: err}
	}
	if err := c.SetLanguage(e.cfg.Language); err != nil {
		return "", fmt.Errorf("set ocr language %q: %w", e.cfg.Language, err)
	}
	text, err := c.Text()
	if err != nil {
		return "", &DecodeError{Kind: constants.IMAGE, Err: err}
	}
	return strings.TrimSpace(text), nil
}
