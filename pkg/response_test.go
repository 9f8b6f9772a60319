package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteResponse(t *testing.T) {
	for caseName, tc := range map[string]struct {
		write      func(w http.ResponseWriter)
		wantStatus int
		wantType   string
		wantBody   string
	}{
		"json bytes ok": {
			write: func(w http.ResponseWriter) {
				WriteResponseBytesOK(w, ContentType.JSON, []byte(`{"done":9,"total":9}`))
			},
			wantStatus: http.StatusOK,
			wantType:   ContentType.JSON,
			wantBody:   `{"done":9,"total":9}`,
		},
		"text ok": {
			write: func(w http.ResponseWriter) {
				WriteTextResponseOK(w, "abc123")
			},
			wantStatus: http.StatusOK,
			wantType:   ContentType.Text,
			wantBody:   "abc123",
		},
		"html ok": {
			write: func(w http.ResponseWriter) {
				WriteHTMLResponseOK(w, []byte("<h3>ALL CLEAR</h3>"))
			},
			wantStatus: http.StatusOK,
			wantType:   ContentType.HTML,
			wantBody:   "<h3>ALL CLEAR</h3>",
		},
		"custom status": {
			write: func(w http.ResponseWriter) {
				WriteResponse(w, ContentType.Text, "unknown day", http.StatusBadRequest)
			},
			wantStatus: http.StatusBadRequest,
			wantType:   ContentType.Text,
			wantBody:   "unknown day",
		},
		"no content type": {
			write: func(w http.ResponseWriter) {
				WriteResponseBytes(w, "", nil, http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
		},
	} {
		t.Run(caseName, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tc.write(rr)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, tc.wantType, rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.wantBody, rr.Body.String())
		})
	}
}
