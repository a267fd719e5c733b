package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devmishra/aibot-backend/internal/domain"
	"github.com/devmishra/aibot-backend/internal/intent"
	"github.com/devmishra/aibot-backend/internal/llm"
	"github.com/devmishra/aibot-backend/internal/policy"
	"github.com/devmishra/aibot-backend/internal/profile"
)

// ErrEmptyMessage rejects a turn before any other work happens.
var ErrEmptyMessage = errors.New("message is required")

// GuestName is the synthetic identity for unauthenticated turns. Guest
// sessions are never persisted.
const GuestName = "Guest"

// HandleTurn runs one chat turn: classify, branch to the profile executor or
// the generation backend, time the turn, build the interaction record, and
// persist it for authenticated users. Persistence failures never fail the
// turn; the response just omits a chat id.
func (s *Service) HandleTurn(ctx context.Context, auth *AuthContext, req domain.TurnRequest, clientIP string) (*domain.TurnResult, error) {
	if req.Message == "" {
		return nil, ErrEmptyMessage
	}

	authenticated := auth != nil
	username := GuestName
	var userID int64
	var token string
	if authenticated {
		username = auth.Profile.Username()
		userID = auth.Profile.ID
		token = auth.Token
	}

	modelType := s.policy.SelectModel(ctx, policy.ModelInput{
		Authenticated: authenticated,
		Requested:     strings.ToLower(req.ModelType),
		Known:         llm.Keys(),
		DefaultModel:  llm.DefaultFor(authenticated),
	})

	userTimestamp := req.UserTimestamp
	if userTimestamp == "" {
		userTimestamp = time.Now().Format(domain.TimestampLayout)
	}

	start := time.Now()
	res := intent.Classify(req.Message)

	var actionField *string
	if res.Type == domain.IntentUpdateProfile {
		field := res.FieldKey
		actionField = &field
	}

	aiResponse, status := s.dispatch(ctx, res, req.Message, token, modelType)

	elapsed := time.Since(start)
	elapsedMs := elapsed.Round(time.Millisecond).Milliseconds()
	aiTimestamp := time.Now().Format(domain.TimestampLayout)

	interaction := domain.Interaction{
		SchemaVersion:      domain.SchemaVersionV2,
		Intent:             res.Category(),
		IntentType:         string(res.Type),
		UserMessage:        req.Message,
		UserTimestamp:      userTimestamp,
		AIResponse:         aiResponse,
		AITimestamp:        aiTimestamp,
		Model:              modelType,
		TimeTakenMs:        elapsedMs,
		TimeTakenFormatted: FormatDuration(elapsedMs),
		ActionField:        actionField,
		Status:             status,
	}

	result := &domain.TurnResult{
		User:                username,
		AIResponse:          aiResponse,
		IsAuthenticated:     authenticated,
		ModelType:           modelType,
		Intent:              string(res.Type),
		IntentCategory:      res.Category(),
		TimeTakenMs:         elapsedMs,
		TimeTakenFormatted:  interaction.TimeTakenFormatted,
		AIResponseTimestamp: aiTimestamp,
	}

	if authenticated {
		sess, err := s.store.AppendOrCreate(ctx, req.ChatID, userID, username, interaction, clientIP)
		if err != nil {
			s.log.Error().Err(err).Int64("user_id", userID).Msg("failed to save conversation")
		} else {
			result.ChatID = &sess.ChatID
		}
	}

	return result, nil
}

// dispatch resolves the classified intent into the response text and the
// turn outcome. Chat turns always succeed at this layer; the generation
// collaborator absorbs its own failures.
func (s *Service) dispatch(ctx context.Context, res domain.IntentResult, message, token, modelType string) (string, string) {
	switch res.Type {
	case domain.IntentIncompleteAction, domain.IntentPossibleProfileUpdate:
		reason := res.Reason
		if reason == "" {
			reason = "Invalid profile update request"
		}
		msg := fmt.Sprintf("❌ %s.\n\n✅ Correct sentence examples:\n\n%s", reason, profile.Examples())
		return msg, domain.StatusFailed

	case domain.IntentUpdateProfile:
		return s.dispatchUpdate(ctx, res, token)

	default:
		return s.models.Respond(ctx, message, modelType), domain.StatusSuccess
	}
}

func (s *Service) dispatchUpdate(ctx context.Context, res domain.IntentResult, token string) (string, string) {
	spec, ok := profile.Lookup(res.FieldKey)
	if !ok {
		msg := fmt.Sprintf("❌ This profile field cannot be updated.\n\n✅ Example:\n%s", profile.Examples())
		return msg, domain.StatusFailed
	}

	err := s.ExecuteProfileUpdate(ctx, token, res.FieldKey, res.RawValue)
	if err == nil {
		return spec.Success, domain.StatusSuccess
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		msg := fmt.Sprintf("❌ %s\n\n✅ Correct example:\n%s", ve.Msg, profile.ExampleFor(res.FieldKey))
		return msg, domain.StatusFailed
	}

	// Not-logged-in and collaborator failures share the field's canned
	// failure line, with the reason attached.
	msg := fmt.Sprintf("%s\n\nℹ Reason: %s", spec.Failure, err.Error())
	return msg, domain.StatusFailed
}
