package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"helpdesk-srv/pkg/discord"

	"github.com/gin-gonic/gin"
)

var redactedHeaders = map[string]bool{
	"Authorization":   true,
	"Cookie":          true,
	"X-Access-Token":  true,
	"X-Auth-Token":    true,
	"X-Project-Token": true,
	"X-Internal-Key":  true,
}

func sendDiscordMessageAsync(d discord.IDiscord, message string) {
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current string
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if len(current)+len(line) > DiscordMaxMessageLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > DiscordMaxMessageLen {
				chunks = append(chunks, line[:DiscordMaxMessageLen])
				line = line[DiscordMaxMessageLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}

func buildInternalServerErrorDataForReportBug(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	sb.WriteString("============== HELPDESK SERVICE ERROR ==============\n")
	if c != nil && c.Request != nil {
		sb.WriteString(fmt.Sprintf("Route   : %s\n", c.Request.URL.Path))
		sb.WriteString(fmt.Sprintf("Method  : %s\n", c.Request.Method))
		sb.WriteString("----------------------------------------------------\n")

		if len(c.Request.Header) > 0 {
			sb.WriteString("Headers :\n")
			for key, values := range c.Request.Header {
				value := strings.Join(values, ", ")
				if redactedHeaders[key] {
					value = "[redacted]"
				}
				sb.WriteString(fmt.Sprintf("    %s: %s\n", key, value))
			}
			sb.WriteString("----------------------------------------------------\n")
		}

		if c.Request.Body != nil {
			bodyBytes, err := io.ReadAll(c.Request.Body)
			if err == nil && len(bodyBytes) > 0 {
				c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
				sb.WriteString("Body    :\n")
				var pretty bytes.Buffer
				if json.Indent(&pretty, bodyBytes, "    ", "  ") == nil {
					sb.WriteString(pretty.String() + "\n")
				} else {
					sb.WriteString("    " + string(bodyBytes) + "\n")
				}
				sb.WriteString("----------------------------------------------------\n")
			}
		}
	}

	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))
	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}
	sb.WriteString("====================================================\n")
	return sb.String()
}

// BuildPanicReport formats a recovered panic that happened outside an HTTP
// request, e.g. inside a websocket frame handler.
func BuildPanicReport(where string, rec any) string {
	return buildInternalServerErrorDataForReportBug(nil, fmt.Sprintf("%s: %v", where, rec), captureStackTrace())
}
