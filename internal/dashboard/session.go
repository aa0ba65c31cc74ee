package dashboard

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
)

const sessionCookie = "careconnect_session"

// ChatMessage is one line of an intake transcript.
type ChatMessage struct {
	Sender string // "you" or "bot"
	Text   string
}

// chatStore keeps intake transcripts per browser session, for display only.
// The backend itself is stateless; losing this store loses nothing but the
// rendered history.
type chatStore struct {
	mu          sync.Mutex
	transcripts map[string][]ChatMessage
}

func newChatStore() *chatStore {
	return &chatStore{transcripts: make(map[string][]ChatMessage)}
}

func (s *chatStore) Append(sessionID string, msg ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts[sessionID] = append(s.transcripts[sessionID], msg)
}

func (s *chatStore) Get(sessionID string) []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	transcript := s.transcripts[sessionID]
	out := make([]ChatMessage, len(transcript))
	copy(out, transcript)
	return out
}

func (s *chatStore) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.transcripts, sessionID)
}

// sessionID reads the session cookie, minting one when absent.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}
