package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmishra/aibot-backend/internal/logging"
)

func TestLookupAndDefaults(t *testing.T) {
	spec, ok := Lookup(ModelPrimary)
	require.True(t, ok)
	assert.Equal(t, "Mistral-7B-Instruct-v0.2", spec.Name)

	_, ok = Lookup("gpt-9000")
	assert.False(t, ok)

	assert.Equal(t, ModelPrimary, DefaultFor(true))
	assert.Equal(t, ModelSecondary, DefaultFor(false))
	assert.Equal(t, []string{ModelPrimary, ModelSecondary}, Keys())
}

func TestRespond(t *testing.T) {
	gen := &MockGenerator{Response: "hi there"}
	reg := NewRegistry(gen, logging.Nop())

	got := reg.Respond(context.Background(), "hello", ModelPrimary)
	assert.Equal(t, "hi there", got)
	require.Len(t, gen.Calls, 1)
	assert.Equal(t, ModelPrimary, gen.Calls[0].Model)
}

func TestRespondAbsorbsFailures(t *testing.T) {
	reg := NewRegistry(&MockGenerator{Fail: true}, logging.Nop())
	assert.Equal(t, Apology, reg.Respond(context.Background(), "hello", ModelSecondary))
}

func TestRespondUnknownModel(t *testing.T) {
	gen := &MockGenerator{}
	reg := NewRegistry(gen, logging.Nop())
	assert.Equal(t, Apology, reg.Respond(context.Background(), "hello", "nope"))
	assert.Empty(t, gen.Calls)
}

func TestFormatTimeDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{5, "5 seconds"},
		{59.6, "60 seconds"},
		{60, "1 minute"},
		{90, "1.5 minutes"},
		{120, "2 minutes"},
		{3600, "1hr"},
		{4800, "1hr 20mins"},
		{7325, "2hrs 2mins"},
		{3660, "1hr 1min"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTimeDuration(tt.seconds), "seconds: %v", tt.seconds)
	}
}
