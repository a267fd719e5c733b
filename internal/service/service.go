// Package service implements the chat turn orchestration, profile-update
// execution, and session history operations.
package service

import (
	"github.com/devmishra/aibot-backend/internal/authclient"
	"github.com/devmishra/aibot-backend/internal/llm"
	"github.com/devmishra/aibot-backend/internal/logging"
	"github.com/devmishra/aibot-backend/internal/policy"
	"github.com/devmishra/aibot-backend/internal/store"
)

// AuthContext carries the validated bearer credential and its cached
// profile. A nil AuthContext means a guest turn.
type AuthContext struct {
	Token   string
	Profile *authclient.Profile
}

// Service coordinates the classifier, the external collaborators, and the
// session store.
type Service struct {
	store  store.Store
	auth   *authclient.Client
	models *llm.Registry
	policy *policy.Engine
	log    *logging.Logger
}

// New wires a Service.
func New(st store.Store, auth *authclient.Client, models *llm.Registry, pol *policy.Engine, log *logging.Logger) *Service {
	return &Service{
		store:  st,
		auth:   auth,
		models: models,
		policy: pol,
		log:    log,
	}
}
