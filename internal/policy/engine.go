// Package policy decides which generation model serves a turn.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"

	"github.com/devmishra/aibot-backend/internal/logging"
)

// Engine is the OPA policy engine for model access.
type Engine struct {
	query rego.PreparedEvalQuery
	log   *logging.Logger
}

// ModelInput is the policy input for one selection.
type ModelInput struct {
	Authenticated bool
	Requested     string
	Known         []string
	DefaultModel  string
}

// NewEngine prepares the model-access policy for evaluation.
func NewEngine(ctx context.Context, policyContent string, log *logging.Logger) (*Engine, error) {
	r := rego.New(
		rego.Query("data.model_access.model"),
		rego.Module("model_access.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query, log: log}, nil
}

// SelectModel returns the effective model key for a turn. A requested model
// is honored only for authenticated users and only when it is known;
// anything else resolves to the identity-class default, silently. Policy
// evaluation errors also fall back to the default: selection must never fail
// a turn.
func (e *Engine) SelectModel(ctx context.Context, in ModelInput) string {
	input := map[string]interface{}{
		"authenticated": in.Authenticated,
		"requested":     in.Requested,
		"known":         in.Known,
		"default_model": in.DefaultModel,
	}

	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		e.log.Error().Err(err).Msg("model policy evaluation failed")
		return in.DefaultModel
	}
	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return in.DefaultModel
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok && s != "" {
		return s
	}
	return in.DefaultModel
}

// DefaultPolicy is the model-access policy content.
const DefaultPolicy = `
package model_access

import rego.v1

model := input.requested if {
	input.authenticated
	input.requested in input.known
} else := input.default_model
`
