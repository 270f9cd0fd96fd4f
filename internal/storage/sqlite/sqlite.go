// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/moneyquest/internal/models"
	"github.com/mmynk/moneyquest/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas in the DSN apply to every pooled connection
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateSession persists a new session with its participants and purchases.
func (s *SQLiteStore) CreateSession(ctx context.Context, session *models.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt == 0 {
		session.CreatedAt = time.Now().Unix()
	}
	if session.Title == "" {
		session.Title = generateTitle(session.Scenario, session.Participants)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO sessions (id, user_id, scenario, title, created_at) VALUES (?, ?, ?, ?, ?)",
		session.ID, session.UserID, session.Scenario, session.Title, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	for i, name := range session.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO session_participants (session_id, position, name) VALUES (?, ?, ?)",
			session.ID, i, name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err := insertPurchases(ctx, tx, session.ID, 0, session.Purchases); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID, including participants and purchases.
func (s *SQLiteStore) GetSession(ctx context.Context, userID, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, scenario, title, created_at FROM sessions WHERE id = ? AND user_id = ?",
		sessionID, userID,
	).Scan(&session.ID, &session.UserID, &session.Scenario, &session.Title, &session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", sessionID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session.Participants, err = loadParticipants(ctx, s.db, sessionID)
	if err != nil {
		return nil, err
	}

	session.Purchases, err = loadPurchases(ctx, s.db, sessionID)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// ListSessions returns the user's sessions without purchases, newest first.
func (s *SQLiteStore) ListSessions(ctx context.Context, userID string) ([]*models.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, scenario, title, created_at FROM sessions WHERE user_id = ? ORDER BY created_at DESC, id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	var sessions []*models.Session
	for rows.Next() {
		session := &models.Session{}
		if err := rows.Scan(&session.ID, &session.UserID, &session.Scenario, &session.Title, &session.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	for _, session := range sessions {
		session.Participants, err = loadParticipants(ctx, s.db, session.ID)
		if err != nil {
			return nil, err
		}
	}

	return sessions, nil
}

// DeleteSession removes a session; purchases and participants cascade.
func (s *SQLiteStore) DeleteSession(ctx context.Context, userID, sessionID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM sessions WHERE id = ? AND user_id = ?",
		sessionID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return requireAffected(result, "session", sessionID)
}

// AddPurchases appends purchases after the session's current last purchase.
func (s *SQLiteStore) AddPurchases(ctx context.Context, userID, sessionID string, purchases []models.Purchase) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := checkSessionOwner(ctx, tx, userID, sessionID); err != nil {
		return err
	}

	var next int
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM purchases WHERE session_id = ?",
		sessionID,
	).Scan(&next)
	if err != nil {
		return fmt.Errorf("failed to get next purchase position: %w", err)
	}

	if err := insertPurchases(ctx, tx, sessionID, next, purchases); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RemovePurchase deletes the purchase at the zero-based index within the session.
func (s *SQLiteStore) RemovePurchase(ctx context.Context, userID, sessionID string, index int) error {
	if index < 0 {
		return fmt.Errorf("purchase index %d: %w", index, storage.ErrNotFound)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := checkSessionOwner(ctx, tx, userID, sessionID); err != nil {
		return err
	}

	var purchaseID string
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM purchases WHERE session_id = ? ORDER BY position LIMIT 1 OFFSET ?",
		sessionID, index,
	).Scan(&purchaseID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("purchase index %d: %w", index, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to find purchase: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM purchases WHERE id = ?", purchaseID); err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertPurchases(ctx context.Context, q querier, sessionID string, start int, purchases []models.Purchase) error {
	for i := range purchases {
		p := &purchases[i]
		if p.ID == "" {
			p.ID = uuid.New().String()
		}

		_, err := q.ExecContext(ctx,
			"INSERT INTO purchases (id, session_id, position, name, amount, payer) VALUES (?, ?, ?, ?, ?, ?)",
			p.ID, sessionID, start+i, p.Name, p.Amount, p.Payer,
		)
		if err != nil {
			return fmt.Errorf("failed to insert purchase: %w", err)
		}

		for j, sharer := range p.Sharers {
			// Sharers are a set; repeated names collapse
			_, err = q.ExecContext(ctx,
				"INSERT OR IGNORE INTO purchase_sharers (purchase_id, position, name) VALUES (?, ?, ?)",
				p.ID, j, sharer,
			)
			if err != nil {
				return fmt.Errorf("failed to insert purchase sharer: %w", err)
			}
		}
	}
	return nil
}

func loadParticipants(ctx context.Context, q querier, sessionID string) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT name FROM session_participants WHERE session_id = ? ORDER BY position",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return names, nil
}

func loadPurchases(ctx context.Context, q querier, sessionID string) ([]models.Purchase, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT id, name, amount, payer FROM purchases WHERE session_id = ? ORDER BY position",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchases: %w", err)
	}

	var purchases []models.Purchase
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(&p.ID, &p.Name, &p.Amount, &p.Payer); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchases: %w", err)
	}

	for i := range purchases {
		sharerRows, err := q.QueryContext(ctx,
			"SELECT name FROM purchase_sharers WHERE purchase_id = ? ORDER BY position",
			purchases[i].ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to get purchase sharers: %w", err)
		}
		for sharerRows.Next() {
			var name string
			if err := sharerRows.Scan(&name); err != nil {
				sharerRows.Close()
				return nil, fmt.Errorf("failed to scan sharer: %w", err)
			}
			purchases[i].Sharers = append(purchases[i].Sharers, name)
		}
		sharerRows.Close()
		if err := sharerRows.Err(); err != nil {
			return nil, fmt.Errorf("failed to iterate sharers: %w", err)
		}
	}

	return purchases, nil
}

func checkSessionOwner(ctx context.Context, q querier, userID, sessionID string) error {
	var exists int
	err := q.QueryRowContext(ctx,
		"SELECT 1 FROM sessions WHERE id = ? AND user_id = ?",
		sessionID, userID,
	).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("session %s: %w", sessionID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check session existence: %w", err)
	}
	return nil
}

func requireAffected(result sql.Result, kind, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}

// generateTitle creates an auto-generated title from participants.
func generateTitle(scenario string, participants []string) string {
	if len(participants) == 0 {
		prefix := "Split"
		if scenario != "" {
			prefix = strings.ToUpper(scenario[:1]) + scenario[1:]
		}
		return fmt.Sprintf("%s - %s", prefix, time.Now().Format("Jan 2, 2006"))
	}
	if len(participants) <= 3 {
		return fmt.Sprintf("Split with %s", strings.Join(participants, ", "))
	}
	return fmt.Sprintf("Split with %s and %d others",
		strings.Join(participants[:2], ", "),
		len(participants)-2,
	)
}
