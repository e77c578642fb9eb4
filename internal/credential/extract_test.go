package credential

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc", "abc"},
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{`"abc"`, "abc"},
		{`"Bearer abc"`, "abc"},
		{`Bearer "abc"`, "abc"},
		{"  Bearer   abc  ", "abc"},
		{"", ""},
		{"Bearer ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanToken(tt.in), "CleanToken(%q)", tt.in)
	}
}

func TestExtractFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		build func() *http.Request
		want  string
	}{
		{
			name: "authorization header wins",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodGet, "/x?token=q", nil)
				r.Header.Set("Authorization", "Bearer h")
				r.Header.Set("X-Project-Token", "p")
				return r
			},
			want: "h",
		},
		{
			name: "project token header",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodGet, "/x", nil)
				r.Header.Set("X-Project-Token", `"p"`)
				return r
			},
			want: "p",
		},
		{
			name: "query parameter",
			build: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/x?token=Bearer%20q", nil)
			},
			want: "q",
		},
		{
			name: "json body",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"token":"b","other":1}`))
				r.Header.Set("Content-Type", "application/json")
				return r
			},
			want: "b",
		},
		{
			name: "form body",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("token=f"))
				r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return r
			},
			want: "f",
		},
		{
			name: "nothing",
			build: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/x", nil)
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFromRequest(tt.build()))
		})
	}
}

func TestExtractFromRequestKeepsJSONBody(t *testing.T) {
	payload := `{"token":"b","ids":[1,2]}`
	r := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(payload))
	r.Header.Set("Content-Type", "application/json")

	assert.Equal(t, "b", ExtractFromRequest(r))
	rest, err := io.ReadAll(r.Body)
	assert.NoError(t, err)
	assert.Equal(t, payload, string(rest))
}

func TestAuthErrorPublic(t *testing.T) {
	err := NewAuthError(ReasonExpired)
	assert.Equal(t, "unauthorized", err.Public())
	assert.Equal(t, ReasonExpired, ReasonOf(err))
	assert.Equal(t, ReasonUnknown, ReasonOf(io.EOF))
}
