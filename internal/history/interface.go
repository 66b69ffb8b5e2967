package history

import (
	"time"

	"gorm.io/datatypes"
)

//go:generate mockgen -destination=../mock/history/mock_history.go -package=mock_history . Repo,Service

// Host is one discovered host as stored inside a record's json blob.
type Host struct {
	IP       string `json:"ip"`
	MAC      string `json:"mac"`
	Hostname string `json:"hostname"`
}

// Record is one completed scan run.
type Record struct {
	ID         int `gorm:"primaryKey"`
	CIDR       string
	TotalHosts int
	HostsFound int
	DurationMs int64
	Hosts      datatypes.JSON
	CreatedAt  time.Time
}

type Repo interface {
	GetAll() ([]*Record, error)
	GetByID(id int) (*Record, error)
	Add(record *Record) (*Record, error)
	Remove(id int) error
	Clear() error
}

type Service interface {
	GetAll() ([]*Record, error)
	SaveRun(cidr string, totalHosts int, duration time.Duration, hosts []Host) (*Record, error)
	Remove(id int) error
	Clear() error
}
