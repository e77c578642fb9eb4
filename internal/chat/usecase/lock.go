package usecase

import "sync"

const lockStripes = 64

// ticketLocks serializes room-join/history and persist/broadcast per ticket.
// Tickets sharing a stripe also serialize, which is harmless.
type ticketLocks struct {
	stripes [lockStripes]sync.Mutex
}

func newTicketLocks() *ticketLocks {
	return &ticketLocks{}
}

func (l *ticketLocks) lock(ticketID int64) func() {
	m := &l.stripes[uint64(ticketID)%lockStripes]
	m.Lock()
	return m.Unlock
}
