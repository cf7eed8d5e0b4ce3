package storage

import (
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jumblecash/raffle-go/internal/logger"
)

type SqliteStorage struct {
	db *gorm.DB
}

func NewSqliteStorage(path string) *SqliteStorage {

	logger.Debug("initializing database...", zap.String("path", path))
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	err = db.AutoMigrate(
		&EventRecord{},
		&TicketRecord{},
	)

	if err != nil {
		panic(err)
	}

	return &SqliteStorage{
		db: db,
	}
}

func (s *SqliteStorage) AppendEvent(record *EventRecord) error {
	logger.Debug("appending lifecycle event...",
		zap.String("raffleId", record.RaffleID),
		zap.String("stage", record.Stage),
	)

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "raffle_id"}, {Name: "stage"}, {Name: "tx_hash"}},
		DoUpdates: clause.AssignmentColumns([]string{"block_number", "payload", "observed_at"}),
	}).Create(record).Error

	if err != nil {
		return err
	}

	logger.Debug("appending lifecycle event... done")
	return nil
}

func (s *SqliteStorage) GetEvents(raffleID string) ([]*EventRecord, error) {

	var records []*EventRecord
	err := s.db.Where("raffle_id = ?", raffleID).Order("block_number asc, id asc").Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}

func (s *SqliteStorage) GetEventsByStage(raffleID string, stage string) ([]*EventRecord, error) {

	var records []*EventRecord
	err := s.db.Where("raffle_id = ? and stage = ?", raffleID, stage).
		Order("block_number asc, id asc").Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}

func (s *SqliteStorage) UpsertTicket(record *TicketRecord) error {
	logger.Debug("upserting ticket snapshot...",
		zap.String("raffleId", record.RaffleID),
		zap.String("ticketId", record.TicketID),
	)

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "raffle_id"}, {Name: "ticket_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"owner", "purchase_price", "refunded", "claimed"}),
	}).Create(record).Error

	if err != nil {
		return err
	}

	logger.Debug("upserting ticket snapshot... done")
	return nil
}

func (s *SqliteStorage) GetTickets(raffleID string) ([]*TicketRecord, error) {

	var records []*TicketRecord
	err := s.db.Where("raffle_id = ?", raffleID).Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}

func (s *SqliteStorage) GetTicketsByOwner(raffleID string, owner string) ([]*TicketRecord, error) {

	var records []*TicketRecord
	err := s.db.Where("raffle_id = ? and owner = ?", raffleID, owner).Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}
