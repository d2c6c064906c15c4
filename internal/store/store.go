package store

import (
	"gorm.io/gorm"

	"poolbalance/internal/store/model"
)

type Store interface {
	Pool() Pool
	Migrate() error
	Close() error
}

type DataStore struct {
	db   *gorm.DB
	pool Pool
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		db:   db,
		pool: NewPoolStore(db),
	}
}

func (s *DataStore) Pool() Pool {
	return s.pool
}

// Migrate creates or updates the tables backing the store.
func (s *DataStore) Migrate() error {
	return s.db.AutoMigrate(&model.Pool{})
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
