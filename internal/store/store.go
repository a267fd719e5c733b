// Package store persists chat sessions and their append-only interaction
// logs.
package store

import (
	"context"

	"github.com/devmishra/aibot-backend/internal/domain"
)

// Store defines the session persistence operations. All reads and writes are
// scoped to the owning user: a chat id owned by someone else behaves exactly
// like a missing one.
type Store interface {
	// Find retrieves a session by chat id for the given owner. Returns
	// (nil, nil) when the id is absent or owned by a different user.
	Find(ctx context.Context, chatID, userID int64) (*domain.ChatSession, error)

	// AppendOrCreate appends the interaction to an existing session when
	// chatID resolves for this owner, bumping updated_at; otherwise it
	// creates a new session containing only this interaction. Concurrent
	// appends to the same session must both land (no lost update).
	AppendOrCreate(ctx context.Context, chatID *int64, userID int64, username string, it domain.Interaction, ip string) (*domain.ChatSession, error)

	// Sidebar lists the owner's sessions, newest updated_at first. The
	// title is the first v2 user message in stored order; sessions without
	// a v2 interaction are omitted.
	Sidebar(ctx context.Context, userID int64) ([]domain.SidebarEntry, error)

	// Detail returns a session with its interactions filtered to schema v2
	// and re-sorted by user_timestamp ascending. Returns (nil, nil) when
	// not found or not owned.
	Detail(ctx context.Context, chatID, userID int64) (*domain.ChatDetail, error)

	// Delete removes a whole session. Returns false when nothing matched.
	Delete(ctx context.Context, chatID, userID int64) (bool, error)

	// Close closes the underlying database.
	Close() error
}
