package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStory(t *testing.T) {
	got := Story("Nigerian", "Yoruba", "I miss my grandmother's kitchen")

	want := "Write a heartwarming short story based on the following personal reflection, considering a Nigerian background and in Yoruba:\n\n\"I miss my grandmother's kitchen\""
	assert.Equal(t, want, got)
}

func TestStory_Deterministic(t *testing.T) {
	assert.Equal(t, Story("Thai", "Thai", "rain"), Story("Thai", "Thai", "rain"))
}

func TestMessageTranslation(t *testing.T) {
	assert.Equal(t,
		"Translate the following message to English from Spanish. Only return the translated message.",
		MessageTranslation("Spanish"),
	)
}

func TestGetInstruction(t *testing.T) {
	instruction, ok := GetInstruction(KeyVisualRewrite)
	assert.True(t, ok)
	assert.Equal(t, VisualRewrite(), instruction.Text)

	_, ok = GetInstruction("unknown")
	assert.False(t, ok)
}
