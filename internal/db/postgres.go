package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/incidentdesk/backend/internal/models"
)

const schema = `CREATE TABLE IF NOT EXISTS tickets (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	priority    TEXT NOT NULL,
	status      TEXT NOT NULL,
	assigned_to TEXT NOT NULL DEFAULT '',
	team        TEXT NOT NULL,
	category    TEXT NOT NULL,
	reported_by TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
)`

// highestTicketNumber matches ticketNumber: ids outside INC-nnn are ignored.
const highestTicketNumber = `SELECT COALESCE(MAX(CAST(substring(id FROM '^INC-([0-9]+)$') AS INTEGER)), 0) FROM tickets`

const ticketColumns = `id, title, description, priority, status, assigned_to, team, category, reported_by, created_at, updated_at`

// PostgresStore is the durable TicketStore, used when DATABASE_URL is set.
type PostgresStore struct {
	Pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &PostgresStore{Pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.Pool.Close()
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

func (s *PostgresStore) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Migrate creates the tickets table and inserts seed tickets that are missing.
func (s *PostgresStore) Migrate(ctx context.Context, seed []models.Ticket) error {
	if _, err := s.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if len(seed) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, t := range seed {
		batch.Queue(`INSERT INTO tickets (`+ticketColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) ON CONFLICT (id) DO NOTHING`,
			t.ID, t.Title, t.Description, t.Priority, t.Status, t.AssignedTo, t.Team, t.Category, t.ReportedBy, t.CreatedAt, t.UpdatedAt)
	}
	if err := s.Pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed tickets: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateTicket(ctx context.Context, t models.Ticket) (models.Ticket, error) {
	err := s.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `LOCK TABLE tickets IN SHARE ROW EXCLUSIVE MODE`); err != nil {
			return err
		}
		var highest int
		if err := tx.QueryRow(ctx, highestTicketNumber).Scan(&highest); err != nil {
			return err
		}
		now := time.Now().UTC()
		t.ID = ticketID(highest + 1)
		if t.Status == "" {
			t.Status = models.StatusOpen
		}
		t.CreatedAt, t.UpdatedAt = now, now
		_, err := tx.Exec(ctx, `INSERT INTO tickets (`+ticketColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
			t.ID, t.Title, t.Description, t.Priority, t.Status, t.AssignedTo, t.Team, t.Category, t.ReportedBy, t.CreatedAt, t.UpdatedAt)
		return err
	})
	if err != nil {
		return models.Ticket{}, err
	}
	return t, nil
}

func (s *PostgresStore) GetTicket(ctx context.Context, id string) (models.Ticket, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id)
	t, err := scanTicket(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Ticket{}, ErrNotFound
	}
	return t, err
}

func (s *PostgresStore) ListTickets(ctx context.Context, filter TicketFilter) ([]models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets`
	var args []any
	var wheres []string
	add := func(column, value string) {
		if activeFilter(value) {
			args = append(args, value)
			wheres = append(wheres, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}
	add("status", filter.Status)
	add("team", filter.Team)
	add("priority", filter.Priority)
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}
	query += " ORDER BY created_at DESC, id ASC"

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Ticket{}
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *PostgresStore) UpdateTicket(ctx context.Context, id string, patch TicketPatch) (models.Ticket, error) {
	var updated models.Ticket
	err := s.WithTx(ctx, func(tx pgx.Tx) error {
		current, err := scanTicket(tx.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1 FOR UPDATE`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		updated = patch.apply(current, time.Now().UTC())
		_, err = tx.Exec(ctx, `UPDATE tickets SET title=$2, description=$3, priority=$4, status=$5, assigned_to=$6, team=$7, category=$8, updated_at=$9 WHERE id=$1`,
			id, updated.Title, updated.Description, updated.Priority, updated.Status, updated.AssignedTo, updated.Team, updated.Category, updated.UpdatedAt)
		return err
	})
	if err != nil {
		return models.Ticket{}, err
	}
	return updated, nil
}

func scanTicket(row pgx.Row) (models.Ticket, error) {
	var t models.Ticket
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Status, &t.AssignedTo, &t.Team, &t.Category, &t.ReportedBy, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}
