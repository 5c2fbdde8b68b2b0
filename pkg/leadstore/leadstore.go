// Package leadstore persists completed leads in Postgres via bun.
package leadstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/viliokaized/prime-intake/agent/contract"
	statex "github.com/viliokaized/prime-intake/agent/state"
)

type Config struct {
	DSN     string        `envconfig:"DSN" split_words:"true" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"5s"`
}

// LeadRow is the stored shape of a dispatched lead.
type LeadRow struct {
	bun.BaseModel `bun:"table:leads,alias:l"`

	ID            string    `bun:"id,pk"`
	Name          string    `bun:"name,notnull"`
	Email         string    `bun:"email,notnull"`
	Phone         string    `bun:"phone,notnull"`
	InsuranceType string    `bun:"insurance_type,notnull"`
	CreatedAt     time.Time `bun:"created_at,notnull"`
}

// Store implements contract.Persister on Postgres.
type Store struct {
	db      *bun.DB
	timeout time.Duration
	now     func() time.Time
}

var _ contractx.Persister = (*Store)(nil)

func New(cfg Config) (*Store, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	return &Store{
		db:      db,
		timeout: timeout,
		now:     time.Now,
	}, nil
}

// Init creates the leads table if it does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.db.NewCreateTable().Model((*LeadRow)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("create leads table: %w", err)
	}
	return nil
}

func (s *Store) Persist(ctx context.Context, lead statex.Lead) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	row := &LeadRow{
		ID:            uuid.NewString(),
		Name:          lead.Name,
		Email:         lead.Email,
		Phone:         lead.Phone,
		InsuranceType: lead.InsuranceType,
		CreatedAt:     s.now().UTC(),
	}
	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
