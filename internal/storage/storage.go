package storage

// Storage persists client-side observations of the raffle contract. It is a
// convenience mirror for reporting and audits; the contract remains the
// source of truth and nothing here is read back into protocol decisions.
type Storage interface {
	// lifecycle events
	AppendEvent(record *EventRecord) error
	GetEvents(raffleID string) ([]*EventRecord, error)
	GetEventsByStage(raffleID string, stage string) ([]*EventRecord, error)

	// ticket snapshots
	UpsertTicket(record *TicketRecord) error
	GetTickets(raffleID string) ([]*TicketRecord, error)
	GetTicketsByOwner(raffleID string, owner string) ([]*TicketRecord, error)
}
