package core

import (
	"PharmaCS/entity"
	"fmt"
	"log/slog"
)

// ComposeResponse runs one conversation turn. A request without a session id
// starts a new conversation; the issued id is returned in the reply so the
// client can thread subsequent turns.
func (c *Core) ComposeResponse(msg entity.ChatRequest) (*entity.ChatReply, error) {
	if c.engine == nil || c.sessions == nil {
		return nil, fmt.Errorf("chat engine not initialized")
	}

	sessionId := msg.SessionId
	if sessionId == "" {
		sessionId = c.sessions.Issue()
	}

	ctx := c.sessions.Get(sessionId)
	reply, next := c.engine.Turn(ctx, msg.Message)
	c.sessions.Put(sessionId, next)

	c.log.With(
		slog.String("session_id", sessionId),
		slog.String("text", reply),
	).Debug("response")

	return &entity.ChatReply{
		SessionId: sessionId,
		Response:  reply,
	}, nil
}

// ResetConversation drops a conversation's context, for example when the
// customer closes the chat widget.
func (c *Core) ResetConversation(sessionId string) error {
	if c.sessions == nil {
		return fmt.Errorf("session store not initialized")
	}
	if sessionId == "" {
		return fmt.Errorf("session id is required")
	}

	c.sessions.Reset(sessionId)

	c.log.With(
		slog.String("session_id", sessionId),
	).Info("conversation reset")

	return nil
}
