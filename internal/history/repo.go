package history

import (
	"errors"

	"github.com/netdash/netdash/internal/exception"
	"gorm.io/gorm"
)

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a new sqlite repo for scan history
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{db: db}
}

// GetAll returns all stored scan records, newest first
func (r *SqliteRepo) GetAll() ([]*Record, error) {
	records := []*Record{}

	if result := r.db.Order("created_at desc").Find(&records); result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

// GetByID returns a single scan record
func (r *SqliteRepo) GetByID(id int) (*Record, error) {
	record := Record{ID: id}

	if result := r.db.First(&record); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return &record, nil
}

func (r *SqliteRepo) Add(record *Record) (*Record, error) {
	if record == nil {
		return nil, errors.New("record cannot be nil")
	}

	if result := r.db.Create(record); result.Error != nil {
		return nil, result.Error
	}

	return record, nil
}

func (r *SqliteRepo) Remove(id int) error {
	return r.db.Delete(&Record{ID: id}).Error
}

func (r *SqliteRepo) Clear() error {
	return r.db.Where("1 = 1").Delete(&Record{}).Error
}
