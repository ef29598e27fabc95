package prompts

import "fmt"

const (
	KeyMemoryTranslation  = "memory_translation"
	KeyVisualRewrite      = "visual_rewrite"
	KeyMessageTranslation = "message_translation"
)

type Instruction struct {
	Name string
	Text string
}

var instructions = map[string]Instruction{
	KeyMemoryTranslation: {
		Name: "Memory Translation",
		Text: "Translate the following memory description to English:",
	},
	KeyVisualRewrite: {
		Name: "Visual Rewrite",
		Text: "Rewrite the following description as a vivid visual scene for image generation:",
	},
	KeyMessageTranslation: {
		Name: "Message Translation",
		Text: "Translate the following message to English from %s. Only return the translated message.",
	},
}

func GetInstruction(key string) (Instruction, bool) {
	instruction, exists := instructions[key]
	return instruction, exists
}

// 반드시 존재하는 키에만 사용
func mustInstruction(key string) string {
	instruction, exists := instructions[key]
	if !exists {
		panic("prompts: unknown instruction " + key)
	}
	return instruction.Text
}

func MemoryTranslation() string {
	return mustInstruction(KeyMemoryTranslation)
}

func VisualRewrite() string {
	return mustInstruction(KeyVisualRewrite)
}

func MessageTranslation(sourceLanguage string) string {
	return fmt.Sprintf(mustInstruction(KeyMessageTranslation), sourceLanguage)
}

// Story는 문화적 배경과 언어를 담은 단일 사용자 프롬프트를 만든다
func Story(culturalBackground, language, message string) string {
	return fmt.Sprintf(
		"Write a heartwarming short story based on the following personal reflection, considering a %s background and in %s:\n\n\"%s\"",
		culturalBackground, language, message,
	)
}
