package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestV2Interactions(t *testing.T) {
	s := &ChatSession{Conversation: []Interaction{
		{SchemaVersion: "", UserMessage: "legacy"},
		{SchemaVersion: SchemaVersionV2, UserMessage: "tagged"},
		{SchemaVersion: "v1", UserMessage: "other"},
	}}

	v2 := s.V2Interactions()
	assert.Len(t, v2, 1)
	assert.Equal(t, "tagged", v2[0].UserMessage)
}

func TestSidebarTitle(t *testing.T) {
	s := &ChatSession{Conversation: []Interaction{
		{SchemaVersion: "", UserMessage: "legacy first"},
		{SchemaVersion: SchemaVersionV2, UserMessage: "real title"},
	}}
	title, ok := s.SidebarTitle()
	assert.True(t, ok)
	assert.Equal(t, "real title", title)

	none := &ChatSession{Conversation: []Interaction{{UserMessage: "legacy"}}}
	_, ok = none.SidebarTitle()
	assert.False(t, ok)
}

func TestSidebarTitleTruncatesRunes(t *testing.T) {
	long := strings.Repeat("é", 100)
	s := &ChatSession{Conversation: []Interaction{
		{SchemaVersion: SchemaVersionV2, UserMessage: long},
	}}

	title, ok := s.SidebarTitle()
	assert.True(t, ok)
	assert.Equal(t, strings.Repeat("é", 80), title)
}
