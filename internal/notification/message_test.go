package notification

import (
	"strings"
	"testing"
)

func TestSnippet(t *testing.T) {
	long := strings.Repeat("a", 200)
	tests := []struct {
		name string
		body string
		n    int
		want string
	}{
		{"short", "hello", 140, "hello"},
		{"truncated", long, 140, strings.Repeat("a", 140)},
		{"runes not bytes", "héllo wörld", 4, "héll"},
		{"default length", long, 0, strings.Repeat("a", DefaultSnippetLength)},
		{"empty", "", 10, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Snippet(tt.body, tt.n); got != tt.want {
				t.Errorf("Snippet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	if got := ChatMessage(9, "hi"); got != `New message on ticket #9: "hi"` {
		t.Errorf("ChatMessage() = %s", got)
	}
	if got := ChatMessage(9, ""); got != "New message on ticket #9" {
		t.Errorf("ChatMessage(empty) = %s", got)
	}
	if got := AssignmentMessage(3, "VPN down"); got != "You were assigned ticket #3: VPN down" {
		t.Errorf("AssignmentMessage() = %s", got)
	}
}
