package notification

import "fmt"

// Snippet returns at most n runes of body.
func Snippet(body string, n int) string {
	if n <= 0 {
		n = DefaultSnippetLength
	}
	r := []rune(body)
	if len(r) <= n {
		return body
	}
	return string(r[:n])
}

func AssignmentMessage(ticketID int64, title string) string {
	if title == "" {
		return fmt.Sprintf("You were assigned ticket #%d", ticketID)
	}
	return fmt.Sprintf("You were assigned ticket #%d: %s", ticketID, title)
}

func ChatMessage(ticketID int64, snippet string) string {
	if snippet == "" {
		return fmt.Sprintf("New message on ticket #%d", ticketID)
	}
	return fmt.Sprintf("New message on ticket #%d: \"%s\"", ticketID, snippet)
}
