package history

import (
	"encoding/json"
	"time"

	"github.com/netdash/netdash/internal/logger"
)

// HistoryService represents our history.Service implementation
type HistoryService struct {
	log  logger.Logger
	repo Repo
}

// NewService returns a new instance of HistoryService
func NewService(repo Repo) *HistoryService {
	return &HistoryService{
		log:  logger.New(),
		repo: repo,
	}
}

func (s *HistoryService) GetAll() ([]*Record, error) {
	return s.repo.GetAll()
}

// SaveRun persists one completed scan run
func (s *HistoryService) SaveRun(
	cidr string,
	totalHosts int,
	duration time.Duration,
	hosts []Host,
) (*Record, error) {
	if hosts == nil {
		hosts = []Host{}
	}

	blob, err := json.Marshal(hosts)

	if err != nil {
		return nil, err
	}

	record := &Record{
		CIDR:       cidr,
		TotalHosts: totalHosts,
		HostsFound: len(hosts),
		DurationMs: duration.Milliseconds(),
		Hosts:      blob,
	}

	s.log.Info().
		Str("cidr", cidr).
		Int("hostsFound", len(hosts)).
		Msg("saving scan record")

	return s.repo.Add(record)
}

func (s *HistoryService) Remove(id int) error {
	return s.repo.Remove(id)
}

func (s *HistoryService) Clear() error {
	return s.repo.Clear()
}
