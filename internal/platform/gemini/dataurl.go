package gemini

import (
	"encoding/base64"
	"strings"

	"github.com/jvanloon/bingo-api/internal/domain"
)

// fallbackMIMEType is assumed when a data URL does not match the expected
// envelope. Uploads are overwhelmingly camera photos, so JPEG is the safe
// guess.
const fallbackMIMEType = "image/jpeg"

// ParseDataURL decodes a data URL of the form data:<mime>;base64,<payload>
// into an image payload ready to be sent as an inline part.
//
// Malformed input is tolerated rather than rejected: anything that does not
// match the envelope is treated as JPEG, and any recognizable prefix is
// stripped heuristically before decoding. A payload that is not valid
// base64 is passed through as raw bytes; the remote call will fail on it,
// and that failure follows the normal content-error policy.
func ParseDataURL(s string) domain.ImageData {
	mimeType := fallbackMIMEType
	payload := s

	if rest, ok := strings.CutPrefix(s, "data:"); ok {
		if mime, p, ok := strings.Cut(rest, ";base64,"); ok && mime != "" {
			mimeType = mime
			payload = p
		} else if _, p, ok := strings.Cut(rest, ","); ok {
			// Unexpected envelope shape; keep whatever follows the comma.
			payload = p
		} else {
			payload = rest
		}
	} else if i := strings.Index(s, "base64,"); i >= 0 {
		payload = s[i+len("base64,"):]
	}

	return domain.ImageData{
		MIMEType: mimeType,
		Data:     decodePayload(payload),
	}
}

// decodePayload decodes base64 with a best-effort fallback chain.
func decodePayload(payload string) []byte {
	if data, err := base64.StdEncoding.DecodeString(payload); err == nil {
		return data
	}
	if data, err := base64.RawStdEncoding.DecodeString(payload); err == nil {
		return data
	}
	if data, err := base64.URLEncoding.DecodeString(payload); err == nil {
		return data
	}
	return []byte(payload)
}
