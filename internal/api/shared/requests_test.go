package shared

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createGameBody struct {
	Topic string `json:"topic" validate:"required"`
	Count int    `json:"count" validate:"gte=1,lte=64"`
}

func TestDecodeJSON(t *testing.T) {
	t.Run("well-formed body", func(t *testing.T) {
		req := httptest.NewRequest(
			http.MethodPost,
			"/api/games",
			strings.NewReader(`{"topic":"tafels van 7","count":9}`),
		)

		var body createGameBody
		require.NoError(t, DecodeJSON(req, &body))
		assert.Equal(t, "tafels van 7", body.Topic)
		assert.Equal(t, 9, body.Count)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(
			http.MethodPost,
			"/api/games",
			strings.NewReader(`{"topic":"tafels",`),
		)

		var body createGameBody
		assert.Error(t, DecodeJSON(req, &body))
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/games", strings.NewReader(""))

		var body createGameBody
		err := DecodeJSON(req, &body)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("read failure", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/games", failingReader{})

		var body createGameBody
		assert.Error(t, DecodeJSON(req, &body))
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

// selfValidating exercises the Validate-interface branch of ValidateRequest.
type selfValidating struct {
	err error
}

func (s *selfValidating) Validate() error { return s.err }

func TestValidateRequest(t *testing.T) {
	t.Run("struct tags pass", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(&createGameBody{Topic: "breuken", Count: 9}))
	})

	t.Run("struct tags fail", func(t *testing.T) {
		assert.Error(t, ValidateRequest(&createGameBody{Topic: "", Count: 9}))
		assert.Error(t, ValidateRequest(&createGameBody{Topic: "breuken", Count: 100}))
	})

	t.Run("Validate interface takes precedence", func(t *testing.T) {
		sentinel := io.ErrClosedPipe
		assert.ErrorIs(t, ValidateRequest(&selfValidating{err: sentinel}), sentinel)
		assert.NoError(t, ValidateRequest(&selfValidating{}))
	})
}
