package waitlist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		status    int
		wantErr   error
		wantCalls int32
		wantFail  bool
	}{
		{name: "accepted", email: "student@example.edu", status: http.StatusOK, wantCalls: 1},
		{name: "redirect body ignored", email: "student@example.edu", status: http.StatusFound, wantCalls: 1},
		{name: "trimmed", email: "  student@example.edu  ", status: http.StatusOK, wantCalls: 1},
		{name: "empty", email: "   ", wantErr: ErrEmailRequired},
		{name: "invalid", email: "not-an-email", wantErr: ErrInvalidEmail},
		{name: "display name rejected", email: "Student <student@example.edu>", wantErr: ErrInvalidEmail},
		{name: "server error", email: "student@example.edu", status: http.StatusInternalServerError, wantCalls: 1, wantFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var body map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, map[string]string{"email": "student@example.edu"}, body)

				w.WriteHeader(tt.status)
			}))
			t.Cleanup(srv.Close)

			c := NewClient(srv.URL, WithHTTPClient(&http.Client{
				CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
			}))
			err := c.Join(context.Background(), tt.email)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantFail:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestJoin_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewClient(url).Join(context.Background(), "student@example.edu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to join waitlist")
}

func TestNewClient_DefaultURL(t *testing.T) {
	assert.Equal(t, DefaultURL, NewClient("").url)
}
