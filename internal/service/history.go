package service

import (
	"context"

	"github.com/devmishra/aibot-backend/internal/domain"
)

// Sidebar lists the user's chats, newest first.
func (s *Service) Sidebar(ctx context.Context, userID int64) ([]domain.SidebarEntry, error) {
	return s.store.Sidebar(ctx, userID)
}

// Detail returns the v2 view of one chat, or nil when the chat does not
// exist for this user.
func (s *Service) Detail(ctx context.Context, chatID, userID int64) (*domain.ChatDetail, error) {
	return s.store.Detail(ctx, chatID, userID)
}

// DeleteChat removes a whole chat session. Returns false when the chat does
// not exist for this user.
func (s *Service) DeleteChat(ctx context.Context, chatID, userID int64) (bool, error) {
	return s.store.Delete(ctx, chatID, userID)
}
