package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmishra/aibot-backend/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func interaction(msg, userTS string) domain.Interaction {
	return domain.Interaction{
		SchemaVersion: domain.SchemaVersionV2,
		Intent:        domain.CategoryChat,
		IntentType:    string(domain.IntentChat),
		UserMessage:   msg,
		UserTimestamp: userTS,
		AIResponse:    "reply to " + msg,
		AITimestamp:   userTS,
		Model:         "mistral",
		Status:        domain.StatusSuccess,
	}
}

func TestAppendOrCreateAllocatesChatID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sess, err := s.AppendOrCreate(ctx, nil, 1, "jane", interaction("hello", "2024-01-01T10:00:00.000000"), "127.0.0.1")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.NotZero(t, sess.ChatID)
	assert.Equal(t, int64(1), sess.UserID)
	require.Len(t, sess.Conversation, 1)
	assert.Equal(t, "hello", sess.Conversation[0].UserMessage)
}

func TestAppendOrCreateAppendsInPlace(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sess, err := s.AppendOrCreate(ctx, nil, 1, "jane", interaction("first", "a"), "")
	require.NoError(t, err)

	sess2, err := s.AppendOrCreate(ctx, &sess.ChatID, 1, "jane", interaction("second", "b"), "")
	require.NoError(t, err)
	assert.Equal(t, sess.ChatID, sess2.ChatID)
	require.Len(t, sess2.Conversation, 2)
	assert.Equal(t, "first", sess2.Conversation[0].UserMessage)
	assert.Equal(t, "second", sess2.Conversation[1].UserMessage)
	assert.True(t, !sess2.UpdatedAt.Before(sess.UpdatedAt))
}

func TestAppendOrCreateForeignChatIDCreatesNew(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sess, err := s.AppendOrCreate(ctx, nil, 1, "jane", interaction("mine", "a"), "")
	require.NoError(t, err)

	// Another user supplying that chat id gets a fresh session, not an
	// error and not an append.
	other, err := s.AppendOrCreate(ctx, &sess.ChatID, 2, "eve", interaction("theirs", "b"), "")
	require.NoError(t, err)
	assert.NotEqual(t, sess.ChatID, other.ChatID)
	require.Len(t, other.Conversation, 1)

	mine, err := s.Find(ctx, sess.ChatID, 1)
	require.NoError(t, err)
	require.Len(t, mine.Conversation, 1)
}

func TestConcurrentAppendsBothLand(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sess, err := s.AppendOrCreate(ctx, nil, 1, "jane", interaction("seed", "a"), "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg := []string{"left", "right"}[i]
			_, errs[i] = s.AppendOrCreate(ctx, &sess.ChatID, 1, "jane", interaction(msg, "b"), "")
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	final, err := s.Find(ctx, sess.ChatID, 1)
	require.NoError(t, err)
	require.Len(t, final.Conversation, 3)

	seen := map[string]int{}
	for _, it := range final.Conversation {
		seen[it.UserMessage]++
	}
	assert.Equal(t, 1, seen["left"])
	assert.Equal(t, 1, seen["right"])
}

func TestFindScopedToOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sess, err := s.AppendOrCreate(ctx, nil, 1, "jane", interaction("hello", "a"), "")
	require.NoError(t, err)

	found, err := s.Find(ctx, sess.ChatID, 1)
	require.NoError(t, err)
	require.NotNil(t, found)

	// Cross-user access is indistinguishable from not-found.
	foreign, err := s.Find(ctx, sess.ChatID, 2)
	require.NoError(t, err)
	assert.Nil(t, foreign)

	missing, err := s.Find(ctx, 9999, 1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSidebarOrderAndTitles(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.AppendOrCreate(ctx, nil, 1, "jane", interaction("oldest chat", "a"), "")
	require.NoError(t, err)
	second, err := s.AppendOrCreate(ctx, nil, 1, "jane", interaction("newest chat", "b"), "")
	require.NoError(t, err)

	entries, err := s.Sidebar(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ChatID, entries[0].ChatID)
	assert.Equal(t, "newest chat", entries[0].Title)
	assert.Equal(t, first.ChatID, entries[1].ChatID)
	assert.Equal(t, "oldest chat", entries[1].Title)
}

func TestSidebarOmitsSessionsWithoutV2(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Legacy session: no schema_version tags at all.
	_, err := s.db.Exec(`
		INSERT INTO ai_conversations (user_id, username, conversation, created_at, updated_at)
		VALUES (1, 'jane', '[{"role": "user", "content": "old style"}]',
		        '2024-01-01T00:00:00.000000', '2024-01-01T00:00:00.000000')`)
	require.NoError(t, err)

	entries, err := s.Sidebar(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSidebarTitleSkipsLegacyRecords(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Mixed history: one legacy record, then a v2 one.
	_, err := s.db.Exec(`
		INSERT INTO ai_conversations (user_id, username, conversation, created_at, updated_at)
		VALUES (1, 'jane',
		        '[{"role": "user", "content": "legacy"}, {"schema_version": "v2", "user_message": "tagged turn", "user_timestamp": "t"}]',
		        '2024-01-01T00:00:00.000000', '2024-01-01T00:00:00.000000')`)
	require.NoError(t, err)

	entries, err := s.Sidebar(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tagged turn", entries[0].Title)
}

func TestDetailFiltersAndSorts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sess, err := s.AppendOrCreate(ctx, nil, 1, "jane", interaction("later", "2024-01-02T00:00:00.000000"), "")
	require.NoError(t, err)
	_, err = s.AppendOrCreate(ctx, &sess.ChatID, 1, "jane", interaction("earlier", "2024-01-01T00:00:00.000000"), "")
	require.NoError(t, err)
	_, err = s.AppendOrCreate(ctx, &sess.ChatID, 1, "jane", interaction("untimestamped", ""), "")
	require.NoError(t, err)

	detail, err := s.Detail(ctx, sess.ChatID, 1)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, domain.SchemaVersionV2, detail.SchemaVersion)
	assert.Equal(t, 3, detail.TotalInteractions)
	require.Len(t, detail.Conversation, 3)

	// Missing timestamp sorts first, then ascending.
	assert.Equal(t, "untimestamped", detail.Conversation[0].UserMessage)
	assert.Equal(t, "earlier", detail.Conversation[1].UserMessage)
	assert.Equal(t, "later", detail.Conversation[2].UserMessage)
}

func TestDetailExcludesLegacyRecords(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	res, err := s.db.Exec(`
		INSERT INTO ai_conversations (user_id, username, conversation, created_at, updated_at)
		VALUES (1, 'jane',
		        '[{"role": "user", "content": "legacy"}, {"schema_version": "v2", "user_message": "kept", "user_timestamp": "t"}]',
		        '2024-01-01T00:00:00.000000', '2024-01-01T00:00:00.000000')`)
	require.NoError(t, err)
	chatID, err := res.LastInsertId()
	require.NoError(t, err)

	detail, err := s.Detail(ctx, chatID, 1)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, 1, detail.TotalInteractions)
	assert.Equal(t, "kept", detail.Conversation[0].UserMessage)
}

func TestDetailNotFoundOrForeign(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sess, err := s.AppendOrCreate(ctx, nil, 1, "jane", interaction("hello", "a"), "")
	require.NoError(t, err)

	detail, err := s.Detail(ctx, sess.ChatID, 2)
	require.NoError(t, err)
	assert.Nil(t, detail)

	detail, err = s.Detail(ctx, 9999, 1)
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sess, err := s.AppendOrCreate(ctx, nil, 1, "jane", interaction("hello", "a"), "")
	require.NoError(t, err)

	// Foreign delete behaves like not-found and leaves the session alone.
	ok, err := s.Delete(ctx, sess.ChatID, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Delete(ctx, sess.ChatID, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Delete(ctx, sess.ChatID, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	found, err := s.Find(ctx, sess.ChatID, 1)
	require.NoError(t, err)
	assert.Nil(t, found)
}
