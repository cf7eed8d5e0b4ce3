package storage

// EventRecord is one observed lifecycle event. The (raffle, stage, tx)
// triple is unique: re-observing the same receipt refreshes the row instead
// of duplicating it.
type EventRecord struct {
	ID          int64  `gorm:"primaryKey"`
	RaffleID    string `gorm:"uniqueIndex:idx_raffle_stage_tx;index"`
	Stage       string `gorm:"uniqueIndex:idx_raffle_stage_tx"`
	TxHash      string `gorm:"uniqueIndex:idx_raffle_stage_tx"`
	BlockNumber uint64 `gorm:"not null"`
	Payload     string `gorm:"not null"`
	ObservedAt  int64  `gorm:"not null"`
}

// TicketRecord is the latest observed state of one ticket.
type TicketRecord struct {
	RaffleID      string `gorm:"primaryKey"`
	TicketID      string `gorm:"primaryKey"`
	Owner         string `gorm:"index"`
	PurchasePrice string `gorm:"default:''"`
	Refunded      bool   `gorm:"default:false"`
	Claimed       bool   `gorm:"default:false"`
}
