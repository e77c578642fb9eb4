package credential

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Headers checked in order when extracting a credential from a request.
var tokenHeaders = []string{
	"Authorization",
	"X-Access-Token",
	"X-Auth-Token",
	"X-Project-Token",
}

const (
	tokenParam   = "token"
	maxBodyPeek  = 64 << 10
	bearerPrefix = "bearer "
)

// CleanToken strips an optional "Bearer " prefix and surrounding quotes.
func CleanToken(raw string) string {
	t := strings.TrimSpace(raw)
	t = strings.Trim(t, `"'`)
	if strings.EqualFold(t, strings.TrimSpace(bearerPrefix)) {
		return ""
	}
	if len(t) >= len(bearerPrefix) && strings.EqualFold(t[:len(bearerPrefix)], bearerPrefix) {
		t = t[len(bearerPrefix):]
	}
	return strings.Trim(strings.TrimSpace(t), `"'`)
}

// ExtractFromRequest looks for a credential in the known headers, the token
// query parameter and finally a token field of a JSON or form body. The body
// is restored so later handlers can still read it.
func ExtractFromRequest(r *http.Request) string {
	for _, h := range tokenHeaders {
		if v := CleanToken(r.Header.Get(h)); v != "" {
			return v
		}
	}
	if v := CleanToken(r.URL.Query().Get(tokenParam)); v != "" {
		return v
	}
	return CleanToken(tokenFromBody(r))
}

func tokenFromBody(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}
	ct := r.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(ct, "application/json"):
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyPeek))
		r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), r.Body))
		if err != nil {
			return ""
		}
		var body struct {
			Token string `json:"token"`
		}
		if json.Unmarshal(raw, &body) != nil {
			return ""
		}
		return body.Token
	case strings.HasPrefix(ct, "application/x-www-form-urlencoded"):
		// ParseForm caches the values on r so the body is not needed again.
		if err := r.ParseForm(); err != nil {
			return ""
		}
		return r.PostForm.Get(tokenParam)
	}
	return ""
}
