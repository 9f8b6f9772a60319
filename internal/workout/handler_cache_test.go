package workout

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/sorcerer/internal/telemetry/metrics"
	"github.com/2beens/sorcerer/internal/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_StaticJSONIsCached(t *testing.T) {
	pages, err := NewPages()
	require.NoError(t, err)
	h := NewHandler(tracker.New(), pages, metrics.NewTestManager())

	for _, tc := range []struct {
		path   string
		key    string
		handle http.HandlerFunc
	}{
		{path: "/api/schedule", key: cacheKeySchedule, handle: h.HandleSchedule},
		{path: "/api/rules", key: cacheKeyRules, handle: h.HandleRulesData},
	} {
		rr := httptest.NewRecorder()
		tc.handle(rr, httptest.NewRequest("GET", tc.path, nil))
		require.Equal(t, http.StatusOK, rr.Code, tc.path)

		cached, err := h.cache.Get([]byte(tc.key))
		require.NoError(t, err, tc.path)
		assert.Equal(t, rr.Body.Bytes(), cached, tc.path)
	}

	assert.Equal(t, int64(2), h.cache.EntryCount())

	// second round is served from the cache, nothing new is stored
	hitsBefore := h.cache.HitCount()
	rr := httptest.NewRecorder()
	h.HandleSchedule(rr, httptest.NewRequest("GET", "/api/schedule", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(2), h.cache.EntryCount())
	assert.Equal(t, hitsBefore+1, h.cache.HitCount())
}
