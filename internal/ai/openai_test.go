package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSections(t *testing.T) {
	raw := `[{"title":"Executive Summary","content":"Short pitch.","type":"SUMMARY"},
	{"title":"Timeline","content":"Six weeks.","type":"TIMELINE"},
	{"title":"Terms","content":"50% advance.","type":"TERMS"}]`

	sections, err := parseSections(raw)
	assert.NoError(t, err)
	assert.Len(t, sections, 3)
	assert.Equal(t, "SUMMARY", sections[0].Type)
	assert.Equal(t, "Terms", sections[2].Title)
}

func TestParseSectionsStripsCodeFence(t *testing.T) {
	raw := "```json\n[{\"title\":\"T\",\"content\":\"C\",\"type\":\"SUMMARY\"}]\n```"

	sections, err := parseSections(raw)
	assert.NoError(t, err)
	assert.Len(t, sections, 1)
}

func TestParseSectionsMalformed(t *testing.T) {
	_, err := parseSections("not json at all")
	assert.Error(t, err)
}

func TestDisabledGenerator(t *testing.T) {
	var g TextGenerator = Disabled{}

	_, err := g.GenerateText(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = g.GenerateSections(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
