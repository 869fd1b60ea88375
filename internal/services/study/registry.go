package study

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/studyhall/internal/common/code"
	"github.com/KirkDiggler/studyhall/internal/models"
)

// Registry holds the active study sessions. No method blocks, and every
// session handed out is a copy.
type Registry interface {
	// Create registers a session under its code. It fails with ErrDuplicateCode
	// when the code is taken and ErrChannelBusy when the voice channel already
	// has a session.
	Create(session *models.StudySession) error

	// Get looks a session up by code, ignoring case
	Get(sessionCode string) (*models.StudySession, error)

	// FindByVoiceChannel returns the session bound to a voice channel
	FindByVoiceChannel(channelID string) (*models.StudySession, error)

	// Update applies fn to the stored session while holding the registry lock.
	// An error from fn leaves the session unchanged.
	Update(sessionCode string, fn func(session *models.StudySession) error) (*models.StudySession, error)

	// Take removes and returns a session in one step
	Take(sessionCode string) (*models.StudySession, error)

	// TakeIf removes and returns a session only when pred accepts it
	TakeIf(sessionCode string, pred func(session *models.StudySession) bool) (*models.StudySession, error)

	// Remove deletes a session; removing an absent code is a no-op
	Remove(sessionCode string)

	// List returns every registered session ordered by code
	List() []*models.StudySession
}

type memoryRegistry struct {
	mu       sync.Mutex
	sessions map[string]*models.StudySession
}

// NewRegistry creates an empty in-memory registry
func NewRegistry() *memoryRegistry {
	return &memoryRegistry{
		sessions: make(map[string]*models.StudySession),
	}
}

func (r *memoryRegistry) Create(session *models.StudySession) error {
	if session == nil || session.Code == "" {
		return ErrInvalidInput
	}

	key := code.Normalize(session.Code)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[key]; exists {
		return ErrDuplicateCode
	}
	if r.findByVoiceChannelLocked(session.VoiceChannelID) != nil {
		return ErrChannelBusy
	}

	stored := session.Copy()
	stored.Code = key
	r.sessions[key] = stored
	return nil
}

func (r *memoryRegistry) Get(sessionCode string) (*models.StudySession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[code.Normalize(sessionCode)]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.Copy(), nil
}

func (r *memoryRegistry) FindByVoiceChannel(channelID string) (*models.StudySession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := r.findByVoiceChannelLocked(channelID)
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session.Copy(), nil
}

func (r *memoryRegistry) findByVoiceChannelLocked(channelID string) *models.StudySession {
	for _, session := range r.sessions {
		if session.Active && session.VoiceChannelID == channelID {
			return session
		}
	}
	return nil
}

func (r *memoryRegistry) Update(sessionCode string, fn func(session *models.StudySession) error) (*models.StudySession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := code.Normalize(sessionCode)
	session, ok := r.sessions[key]
	if !ok {
		return nil, ErrSessionNotFound
	}

	updated := session.Copy()
	if err := fn(updated); err != nil {
		return nil, err
	}

	// Identity fields stay fixed
	updated.Code = session.Code
	updated.HostID = session.HostID
	updated.VoiceChannelID = session.VoiceChannelID

	r.sessions[key] = updated
	return updated.Copy(), nil
}

func (r *memoryRegistry) Take(sessionCode string) (*models.StudySession, error) {
	return r.TakeIf(sessionCode, nil)
}

func (r *memoryRegistry) TakeIf(sessionCode string, pred func(session *models.StudySession) bool) (*models.StudySession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := code.Normalize(sessionCode)
	session, ok := r.sessions[key]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if pred != nil && !pred(session.Copy()) {
		return nil, ErrSessionNotFound
	}

	delete(r.sessions, key)
	return session.Copy(), nil
}

func (r *memoryRegistry) Remove(sessionCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, code.Normalize(sessionCode))
}

func (r *memoryRegistry) List() []*models.StudySession {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions := make([]*models.StudySession, 0, len(r.sessions))
	for _, session := range r.sessions {
		sessions = append(sessions, session.Copy())
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Code < sessions[j].Code
	})
	return sessions
}
