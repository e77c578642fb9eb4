package repository

type CreateOptions struct {
	TicketID      int64
	SenderID      string
	Body          string
	AttachmentRef string
}
