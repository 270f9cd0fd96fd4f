// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/moneyquest/internal/models"
)

// ErrNotFound is returned when a record does not exist or belongs to another user.
var ErrNotFound = errors.New("not found")

// Store defines the interface for all storage operations.
// Every method is scoped to a user: records owned by other users are
// reported as ErrNotFound.
type Store interface {
	SessionStore
	ExpenseStore
	PreferenceStore

	// Close releases any resources held by the store.
	Close() error
}

// SessionStore persists bill-split sessions and their purchases.
type SessionStore interface {
	// CreateSession persists a new session with its participants and purchases.
	// The session ID, Title and CreatedAt fields are populated when empty.
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a session with its participants and purchases in order.
	GetSession(ctx context.Context, userID, sessionID string) (*models.Session, error)

	// ListSessions returns the user's sessions, newest first.
	// Purchases are not loaded.
	ListSessions(ctx context.Context, userID string) ([]*models.Session, error)

	// DeleteSession removes a session and its purchases.
	DeleteSession(ctx context.Context, userID, sessionID string) error

	// AddPurchases appends purchases to the end of a session.
	// Purchase IDs are populated when empty.
	AddPurchases(ctx context.Context, userID, sessionID string, purchases []models.Purchase) error

	// RemovePurchase deletes the purchase at the zero-based index.
	RemovePurchase(ctx context.Context, userID, sessionID string, index int) error
}

// ExpenseStore persists expense tracker entries.
type ExpenseStore interface {
	// CreateExpense persists a new expense. ID and CreatedAt are populated when empty.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns the user's expenses, newest date first.
	ListExpenses(ctx context.Context, userID string) ([]*models.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// PreferenceStore is a key/value store namespaced by user.
type PreferenceStore interface {
	// SetPreference inserts or replaces a value.
	SetPreference(ctx context.Context, pref *models.Preference) error

	// GetPreference returns the value stored under key.
	GetPreference(ctx context.Context, userID, key string) (*models.Preference, error)

	// ListPreferences returns all of the user's values ordered by key.
	ListPreferences(ctx context.Context, userID string) ([]*models.Preference, error)

	// DeletePreference removes a value.
	DeletePreference(ctx context.Context, userID, key string) error
}
