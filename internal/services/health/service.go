package health

import (
	"context"
	"time"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Report is the /health payload.
type Report struct {
	OK          bool   `json:"ok"`
	Database    string `json:"database"`
	ObjectStore string `json:"object_store"`
	LLMProvider string `json:"llm_provider"`
}

// Service reports process readiness.
type Service struct {
	DB          Pinger
	ObjectStore string
	LLMProvider string
}

func NewService(db Pinger, objectStore, llmProvider string) *Service {
	return &Service{DB: db, ObjectStore: objectStore, LLMProvider: llmProvider}
}

// Status pings the database when one is configured. Without one the
// process runs on in-memory repositories and is still healthy.
func (s *Service) Status(ctx context.Context) Report {
	r := Report{OK: true, Database: "memory", ObjectStore: s.ObjectStore, LLMProvider: s.LLMProvider}
	if s.DB == nil {
		return r
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		r.OK = false
		r.Database = "unavailable"
		return r
	}
	r.Database = "ok"
	return r
}
