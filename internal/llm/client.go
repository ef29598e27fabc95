/**
* Name: 			client.go
* Description: 		텍스트 생성(채팅 완성) 공통 타입
* Workflow: 		역할이 붙은 메시지 목록 -> 모델 호출 -> 생성된 텍스트
 */

package llm

import (
	"context"
	"errors"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

var ErrEmptyCompletion = errors.New("no completion returned")

type Message struct {
	Role    Role
	Content string
}

func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Completer는 채팅 완성 한 번을 수행한다. 재시도나 별도 타임아웃 없음.
type Completer interface {
	Complete(ctx context.Context, model string, messages []Message) (string, error)
}
