package appdir

import (
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"

	apperrors "github.com/jmgilman/go/appdir/errors"
)

// decodeText returns data as a string if it is valid UTF-8. Otherwise the
// error carries the most likely charset so callers can report or convert it.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	err := apperrors.New(apperrors.CodeInvalidEncoding, "content is not valid UTF-8")
	if offset := invalidOffset(data); offset >= 0 {
		err = apperrors.WithContext(err, "offset", offset)
	}
	if result, derr := chardet.NewTextDetector().DetectBest(data); derr == nil && result != nil {
		err = apperrors.WithContext(err, "charset", strings.ToLower(result.Charset))
		err = apperrors.WithContext(err, "confidence", result.Confidence)
	}
	return "", err
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence,
// or -1.
func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
