package service

import (
	"context"
	"errors"
)

// ErrNarrationSuperseded is returned when a newer narration started while
// this one was being rendered. Exactly one narration is live per session;
// the page drops superseded audio instead of playing it.
var ErrNarrationSuperseded = errors.New("narration superseded")

// SpeechService renders narration audio, enforcing the single-live-handle
// rule through a per-session sequence.
type SpeechService struct {
	speech SpeechClient
	store  *SessionStore
}

// NewSpeechService creates the narration proxy.
func NewSpeechService(speech SpeechClient, store *SessionStore) *SpeechService {
	return &SpeechService{speech: speech, store: store}
}

// Narrate renders text to audio. Starting a narration invalidates any
// prior in-flight one; if a newer narration starts before this render
// returns, the stale audio is discarded.
func (s *SpeechService) Narrate(ctx context.Context, sessionID, text string) ([]byte, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sess.narrationSeq++
	seq := sess.narrationSeq
	sess.mu.Unlock()

	audio, err := s.speech.Speak(ctx, text)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	current := sess.narrationSeq
	sess.mu.Unlock()
	if current != seq {
		return nil, ErrNarrationSuperseded
	}
	return audio, nil
}
