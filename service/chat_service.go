package service

import (
	"context"
	"log/slog"
)

// The in-character reply used when the responder is unreachable. Chat never
// surfaces a raw error to the page.
const chatFallbackReply = "My crystal ball is a little cloudy right now. Ask me again in a moment — in the meantime, the numbers on screen don't lie."

// ChatService proxies free-form questions to the conversational responder
// with the session's form as context.
type ChatService struct {
	chat  ChatClient
	store *SessionStore
}

// NewChatService creates the chat proxy.
func NewChatService(chat ChatClient, store *SessionStore) *ChatService {
	return &ChatService{chat: chat, store: store}
}

// Ask forwards one message. A responder failure substitutes the
// in-character fallback rather than an error.
func (s *ChatService) Ask(ctx context.Context, sessionID, message string) (string, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return "", err
	}

	sess.mu.Lock()
	form := sess.Form
	sess.mu.Unlock()

	reply, err := s.chat.Chat(ctx, message, form)
	if err != nil {
		slog.Warn("chat responder failed", "session", sessionID, "err", err)
		return chatFallbackReply, nil
	}
	return reply, nil
}
