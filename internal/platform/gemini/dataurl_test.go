package gemini

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDataURL(t *testing.T) {
	t.Run("well-formed PNG data URL", func(t *testing.T) {
		img := ParseDataURL("data:image/png;base64,AAAA")

		assert.Equal(t, "image/png", img.MIMEType)
		want, _ := base64.StdEncoding.DecodeString("AAAA")
		assert.Equal(t, want, img.Data)
	})

	t.Run("well-formed JPEG data URL", func(t *testing.T) {
		payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))
		img := ParseDataURL("data:image/jpeg;base64," + payload)

		assert.Equal(t, "image/jpeg", img.MIMEType)
		assert.Equal(t, []byte("fake image bytes"), img.Data)
	})

	t.Run("missing data prefix falls back to JPEG", func(t *testing.T) {
		img := ParseDataURL("image/png;base64,AAAA")

		assert.Equal(t, fallbackMIMEType, img.MIMEType)
		want, _ := base64.StdEncoding.DecodeString("AAAA")
		assert.Equal(t, want, img.Data, "recognizable base64 prefix should be stripped")
	})

	t.Run("data prefix without base64 marker", func(t *testing.T) {
		img := ParseDataURL("data:image/png,AAAA")

		assert.Equal(t, fallbackMIMEType, img.MIMEType)
		want, _ := base64.StdEncoding.DecodeString("AAAA")
		assert.Equal(t, want, img.Data)
	})

	t.Run("bare payload", func(t *testing.T) {
		img := ParseDataURL("AAAA")

		assert.Equal(t, fallbackMIMEType, img.MIMEType)
		want, _ := base64.StdEncoding.DecodeString("AAAA")
		assert.Equal(t, want, img.Data)
	})

	t.Run("unpadded base64 still decodes", func(t *testing.T) {
		img := ParseDataURL("data:image/png;base64,AAA")

		assert.Equal(t, "image/png", img.MIMEType)
		want, _ := base64.RawStdEncoding.DecodeString("AAA")
		assert.Equal(t, want, img.Data)
	})

	t.Run("undecodable payload passes through as raw bytes", func(t *testing.T) {
		img := ParseDataURL("data:image/png;base64,%%not-base64%%")

		assert.Equal(t, "image/png", img.MIMEType)
		assert.Equal(t, []byte("%%not-base64%%"), img.Data)
	})
}
