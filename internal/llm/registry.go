// Package llm provides the generation-backend registry and clients for the
// locally hosted inference server.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/devmishra/aibot-backend/internal/logging"
)

// Model keys. Authenticated turns default to the primary model, guest turns
// to the secondary one.
const (
	ModelPrimary   = "mistral"
	ModelSecondary = "tinyllama"
)

// Apology is returned whenever generation fails; collaborator failures never
// propagate past this package.
const Apology = "Sorry, I couldn't generate a response right now."

// ModelSpec holds one backend's identity and generation parameters.
type ModelSpec struct {
	Key           string
	Name          string
	MaxTokens     int
	Temperature   float64
	TopP          float64
	TopK          int
	ContextLength int
	Stop          []string
}

var specs = []ModelSpec{
	{
		Key:           ModelPrimary,
		Name:          "Mistral-7B-Instruct-v0.2",
		MaxTokens:     256,
		Temperature:   0.6,
		TopP:          0.85,
		TopK:          40,
		ContextLength: 768,
		Stop:          []string{"User:", "Assistant:"},
	},
	{
		Key:           ModelSecondary,
		Name:          "TinyLlama-1.1B-Chat-v1.0",
		MaxTokens:     256,
		Temperature:   0.6,
		TopP:          0.85,
		TopK:          40,
		ContextLength: 1024,
		Stop:          []string{"User:", "Assistant:"},
	},
}

// Lookup returns the spec for a model key.
func Lookup(key string) (ModelSpec, bool) {
	for _, s := range specs {
		if s.Key == key {
			return s, true
		}
	}
	return ModelSpec{}, false
}

// Known reports whether a model key is registered.
func Known(key string) bool {
	_, ok := Lookup(key)
	return ok
}

// Keys returns the registered model keys in declaration order.
func Keys() []string {
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = s.Key
	}
	return out
}

// DefaultFor returns the default model key for an identity class.
func DefaultFor(authenticated bool) string {
	if authenticated {
		return ModelPrimary
	}
	return ModelSecondary
}

// Generator produces a completion for a user message with one of the
// registered models.
type Generator interface {
	Generate(ctx context.Context, message string, spec ModelSpec) (string, error)
}

// Registry pairs the generator with the model table and absorbs failures
// into the apology string.
type Registry struct {
	gen Generator
	log *logging.Logger
}

// NewRegistry creates a registry over the given generator.
func NewRegistry(gen Generator, log *logging.Logger) *Registry {
	return &Registry{gen: gen, log: log}
}

// Respond generates a reply for the message with the given model key. All
// failures (unknown key, transport, backend error) are logged and rendered
// as the apology string.
func (r *Registry) Respond(ctx context.Context, message, modelKey string) string {
	spec, ok := Lookup(modelKey)
	if !ok {
		r.log.Error().Str("model", modelKey).Msg("unknown model requested for generation")
		return Apology
	}

	start := time.Now()
	text, err := r.gen.Generate(ctx, message, spec)
	if err != nil {
		r.log.Error().Err(err).Str("model", modelKey).Msg("generation failed")
		return Apology
	}

	r.log.Debug().
		Str("model", modelKey).
		Str("took", FormatTimeDuration(time.Since(start).Seconds())).
		Msg("generation complete")
	return text
}

// FormatTimeDuration renders a duration given in seconds as "5 seconds",
// "2 minutes", "1.5 minutes", or "1hr 20mins". Distinct from the
// millisecond-based formatter used on turn responses; both formats appear in
// existing client output and logs.
func FormatTimeDuration(seconds float64) string {
	if seconds < 60 {
		return fmt.Sprintf("%d seconds", int(seconds+0.5))
	}

	if seconds < 3600 {
		minutes := seconds / 60
		if minutes == float64(int(minutes)) {
			if int(minutes) == 1 {
				return "1 minute"
			}
			return fmt.Sprintf("%d minutes", int(minutes))
		}
		return fmt.Sprintf("%.1f minutes", minutes)
	}

	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60

	hourStr := fmt.Sprintf("%dhrs", hours)
	if hours == 1 {
		hourStr = "1hr"
	}
	if minutes == 0 {
		return hourStr
	}
	minStr := fmt.Sprintf("%dmins", minutes)
	if minutes == 1 {
		minStr = "1min"
	}
	return hourStr + " " + minStr
}
