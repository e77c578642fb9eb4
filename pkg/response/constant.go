package response

const (
	DefaultStackTraceDepth  = 32
	DefaultErrorMessage     = "Something went wrong"
	MessageSuccess          = "Success"
	ValidationErrorCode     = 400
	ValidationErrorMsg      = "Validation error"
	InternalServerErrorCode = 500
	TimestampFormat         = "2006-01-02T15:04:05.000Z07:00"
	DiscordMaxMessageLen    = 3500
)
