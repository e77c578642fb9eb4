package response

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"helpdesk-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

var errSentinel = stderrors.New("thing not found")

func TestErrorWithMap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	eMap := ErrorMapping{
		errSentinel: errors.NewNotFoundHTTPError("Thing not found"),
	}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{name: "mapped sentinel", err: errSentinel, wantStatus: http.StatusNotFound, wantCode: 404},
		{name: "wrapped sentinel", err: fmt.Errorf("repo: %w", errSentinel), wantStatus: http.StatusNotFound, wantCode: 404},
		{name: "validation", err: errors.NewValidationError(400, "page", "must be a number"), wantStatus: http.StatusBadRequest, wantCode: 400},
		{name: "unknown", err: stderrors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: InternalServerErrorCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			ErrorWithMap(c, tt.err, eMap, nil)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var resp Resp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.ErrorCode != tt.wantCode {
				t.Errorf("error_code = %d, want %d", resp.ErrorCode, tt.wantCode)
			}
		})
	}
}

func TestSplitMessageForDiscord(t *testing.T) {
	long := strings.Repeat("a", DiscordMaxMessageLen+10)
	chunks := splitMessageForDiscord("head\n" + long)
	if len(chunks) < 2 {
		t.Fatalf("expected the message to be split, got %d chunks", len(chunks))
	}
	for i, ch := range chunks {
		if len(ch) > DiscordMaxMessageLen {
			t.Errorf("chunk %d has %d bytes", i, len(ch))
		}
	}
}

func TestReportRedactsCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/notifications/mark-all-read", nil)
	c.Request.Header.Set("Authorization", "Bearer secret-token")

	report := buildInternalServerErrorDataForReportBug(c, "boom", nil)
	if strings.Contains(report, "secret-token") {
		t.Errorf("report leaked the bearer token:\n%s", report)
	}
}

func TestTimestampMarshalsUTC(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	ts := Timestamp(time.Date(2026, 3, 1, 9, 30, 0, 5_000_000, loc))
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `"2026-03-01T02:30:00.005Z"`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
