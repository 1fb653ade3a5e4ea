package chat

import "PharmaCS/entity"

type Core interface {
	ComposeResponse(msg entity.ChatRequest) (*entity.ChatReply, error)
	ResetConversation(sessionId string) error
}
