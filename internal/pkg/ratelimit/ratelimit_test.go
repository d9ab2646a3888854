package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestByIP(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	reject := func(w http.ResponseWriter) { w.WriteHeader(http.StatusTooManyRequests) }
	h := ByIP(rate.Limit(0.001), 2, reject)(ok)

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/send-leave-notification", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5002"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2:5000"), "other clients have their own bucket")
}

func TestKeyedLimiter_ReusesBucket(t *testing.T) {
	k := NewKeyedLimiter(rate.Limit(1), 1)
	assert.Same(t, k.GetLimiter("a"), k.GetLimiter("a"))
	assert.NotSame(t, k.GetLimiter("a"), k.GetLimiter("b"))
}
