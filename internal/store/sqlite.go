package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/devmishra/aibot-backend/internal/domain"
)

// SQLiteStore implements Store using SQLite. The conversation column holds
// the interaction log as a JSON array; appends go through json_insert in a
// single UPDATE so concurrent turns against the same chat never overwrite
// one another.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLite creates a new SQLite-backed store.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across
	// goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS ai_conversations (
			chat_id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			username TEXT NOT NULL DEFAULT '',
			is_authenticated INTEGER NOT NULL DEFAULT 1,
			conversation TEXT NOT NULL,
			ip_address TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversations_user ON ai_conversations(user_id, updated_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Find retrieves a session scoped to its owner.
func (s *SQLiteStore) Find(ctx context.Context, chatID, userID int64) (*domain.ChatSession, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT chat_id, user_id, username, is_authenticated, conversation,
		       COALESCE(ip_address, ''), created_at, updated_at
		FROM ai_conversations WHERE chat_id = ? AND user_id = ?`, chatID, userID)
	return scanSession(row)
}

func scanSession(row *sql.Row) (*domain.ChatSession, error) {
	var sess domain.ChatSession
	var conversation string
	var createdAt, updatedAt string

	err := row.Scan(&sess.ChatID, &sess.UserID, &sess.Username, &sess.IsAuthenticated,
		&conversation, &sess.IPAddress, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan session row: %w", err)
	}

	if err := json.Unmarshal([]byte(conversation), &sess.Conversation); err != nil {
		return nil, fmt.Errorf("decode conversation: %w", err)
	}
	sess.CreatedAt = parseStoredTime(createdAt)
	sess.UpdatedAt = parseStoredTime(updatedAt)
	return &sess, nil
}

func parseStoredTime(v string) time.Time {
	t, err := time.Parse(domain.TimestampLayout, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AppendOrCreate appends in place when chatID resolves for this owner,
// otherwise creates a fresh session.
func (s *SQLiteStore) AppendOrCreate(ctx context.Context, chatID *int64, userID int64, username string, it domain.Interaction, ip string) (*domain.ChatSession, error) {
	payload, err := json.Marshal(it)
	if err != nil {
		return nil, fmt.Errorf("encode interaction: %w", err)
	}
	now := time.Now().UTC().Format(domain.TimestampLayout)

	if chatID != nil {
		// Atomic array append; two concurrent appends both land because
		// SQLite serializes the writes and each UPDATE re-reads the column.
		res, err := s.db.ExecContext(ctx, `
			UPDATE ai_conversations
			SET conversation = json_insert(conversation, '$[#]', json(?)), updated_at = ?
			WHERE chat_id = ? AND user_id = ?`,
			string(payload), now, *chatID, userID)
		if err != nil {
			return nil, fmt.Errorf("append interaction: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 1 {
			return s.Find(ctx, *chatID, userID)
		}
		// Unresolved chat_id (absent or foreign) means "create new".
	}

	initial, err := json.Marshal([]domain.Interaction{it})
	if err != nil {
		return nil, fmt.Errorf("encode conversation: %w", err)
	}

	var ipVal interface{}
	if ip != "" {
		ipVal = ip
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO ai_conversations (user_id, username, is_authenticated, conversation, ip_address, created_at, updated_at)
		VALUES (?, ?, 1, ?, ?, ?, ?)`,
		userID, username, string(initial), ipVal, now, now)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read new chat id: %w", err)
	}
	return s.Find(ctx, id, userID)
}

// Sidebar lists the owner's sessions, newest first.
func (s *SQLiteStore) Sidebar(ctx context.Context, userID int64) ([]domain.SidebarEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT chat_id, conversation FROM ai_conversations
		WHERE user_id = ? ORDER BY updated_at DESC, chat_id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	entries := []domain.SidebarEntry{}
	for rows.Next() {
		var chatID int64
		var conversation string
		if err := rows.Scan(&chatID, &conversation); err != nil {
			return nil, fmt.Errorf("scan sidebar row: %w", err)
		}

		sess := domain.ChatSession{ChatID: chatID}
		if err := json.Unmarshal([]byte(conversation), &sess.Conversation); err != nil {
			// A corrupt log hides the session from the sidebar rather than
			// failing the whole listing.
			continue
		}
		if title, ok := sess.SidebarTitle(); ok {
			entries = append(entries, domain.SidebarEntry{ChatID: chatID, Title: title})
		}
	}
	return entries, rows.Err()
}

// Detail returns the v2 view of a session, sorted by user timestamp.
func (s *SQLiteStore) Detail(ctx context.Context, chatID, userID int64) (*domain.ChatDetail, error) {
	sess, err := s.Find(ctx, chatID, userID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	v2 := sess.V2Interactions()
	// Lexicographic ISO-8601 comparison; a missing timestamp sorts first.
	sort.SliceStable(v2, func(i, j int) bool {
		return v2[i].UserTimestamp < v2[j].UserTimestamp
	})

	return &domain.ChatDetail{
		ChatID:            sess.ChatID,
		SchemaVersion:     domain.SchemaVersionV2,
		TotalInteractions: len(v2),
		Conversation:      v2,
		CreatedAt:         sess.CreatedAt.Format(domain.TimestampLayout),
		UpdatedAt:         sess.UpdatedAt.Format(domain.TimestampLayout),
	}, nil
}

// Delete removes a whole session scoped to its owner.
func (s *SQLiteStore) Delete(ctx context.Context, chatID, userID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM ai_conversations WHERE chat_id = ? AND user_id = ?`, chatID, userID)
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
