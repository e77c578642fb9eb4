package discord

import "time"

const (
	defaultBaseURL = "https://discord.com/api/webhooks"

	ColorRed    = 15158332
	ColorOrange = 15105570

	MaxEmbedDescriptionLen = 4096
	MaxFieldValueLen       = 1024

	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 500 * time.Millisecond

	DefaultUsername = "Helpdesk Bot"
	userAgent       = "Helpdesk-Bot/1.0"
	reportBugTitle  = "Helpdesk Service Error Report"
)
