package service

import (
	"context"
	"errors"

	"github.com/devmishra/aibot-backend/internal/profile"
)

// Profile-update executor failures. ValidationError keeps validator messages
// distinguishable so the orchestrator can attach the field's example text.
var (
	ErrNotLoggedIn  = errors.New("You must be logged in to update your profile.")
	ErrUnknownField = errors.New("This profile field cannot be updated.")
)

// ValidationError is a value rejected by the field's validator.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ExecuteProfileUpdate validates the value for the field and delegates to
// the external profile service. Remote rejections and transport failures
// come back as *authclient.UpdateError with the service's reason text.
func (s *Service) ExecuteProfileUpdate(ctx context.Context, token, fieldKey, value string) error {
	if token == "" {
		return ErrNotLoggedIn
	}

	spec, ok := profile.Lookup(fieldKey)
	if !ok {
		return ErrUnknownField
	}

	if msg := spec.Validate(value); msg != "" {
		return &ValidationError{Msg: msg}
	}

	return s.auth.UpdateProfile(ctx, token, fieldKey, value)
}
