package study

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/KirkDiggler/studyhall/internal/models"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
	registry *memoryRegistry
}

func (s *RegistryTestSuite) SetupTest() {
	s.registry = NewRegistry()
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) newSession(sessionCode, channelID string) *models.StudySession {
	return &models.StudySession{
		Code:           sessionCode,
		HostID:         "host-1",
		VoiceChannelID: channelID,
		GuildID:        "guild-1",
		Duration:       10,
		Active:         true,
	}
}

func (s *RegistryTestSuite) TestCreateAndGet() {
	s.Require().NoError(s.registry.Create(s.newSession("AB12C", "voice-1")))

	session, err := s.registry.Get("ab12c")
	s.Require().NoError(err)
	s.Equal("AB12C", session.Code)

	found, err := s.registry.FindByVoiceChannel("voice-1")
	s.Require().NoError(err)
	s.Equal("AB12C", found.Code)

	_, err = s.registry.FindByVoiceChannel("voice-2")
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RegistryTestSuite) TestCreate_Conflicts() {
	s.Require().NoError(s.registry.Create(s.newSession("AB12C", "voice-1")))

	s.ErrorIs(s.registry.Create(s.newSession("ab12c", "voice-2")), ErrDuplicateCode)
	s.ErrorIs(s.registry.Create(s.newSession("ZZ999", "voice-1")), ErrChannelBusy)
	s.ErrorIs(s.registry.Create(nil), ErrInvalidInput)
}

func (s *RegistryTestSuite) TestCreate_ConcurrentSameChannel() {
	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.registry.Create(s.newSession(fmt.Sprintf("CODE%d", i), "voice-1"))
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
				return
			}
			s.True(errors.Is(err, ErrChannelBusy))
		}(i)
	}
	wg.Wait()

	s.Equal(1, created)
	s.Len(s.registry.List(), 1)
}

func (s *RegistryTestSuite) TestGet_ReturnsCopy() {
	s.Require().NoError(s.registry.Create(s.newSession("AB12C", "voice-1")))

	session, err := s.registry.Get("AB12C")
	s.Require().NoError(err)
	session.Duration = 99

	stored, err := s.registry.Get("AB12C")
	s.Require().NoError(err)
	s.Equal(10, stored.Duration)
}

func (s *RegistryTestSuite) TestUpdate() {
	s.Require().NoError(s.registry.Create(s.newSession("AB12C", "voice-1")))

	updated, err := s.registry.Update("AB12C", func(session *models.StudySession) error {
		session.Duration += 5
		session.HostID = "someone-else"
		return nil
	})
	s.Require().NoError(err)
	s.Equal(15, updated.Duration)
	s.Equal("host-1", updated.HostID)

	// A failing update leaves the session untouched
	_, err = s.registry.Update("AB12C", func(session *models.StudySession) error {
		session.Duration = 1
		return ErrAlreadyPaused
	})
	s.ErrorIs(err, ErrAlreadyPaused)

	stored, err := s.registry.Get("AB12C")
	s.Require().NoError(err)
	s.Equal(15, stored.Duration)

	_, err = s.registry.Update("MISSING", func(*models.StudySession) error { return nil })
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RegistryTestSuite) TestTake_OnlyOnce() {
	s.Require().NoError(s.registry.Create(s.newSession("AB12C", "voice-1")))

	var wg sync.WaitGroup
	var mu sync.Mutex
	taken := 0

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.registry.Take("AB12C"); err == nil {
				mu.Lock()
				taken++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(1, taken)
	_, err := s.registry.Get("AB12C")
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RegistryTestSuite) TestTakeIf() {
	session := s.newSession("AB12C", "voice-1")
	session.Paused = true
	s.Require().NoError(s.registry.Create(session))

	_, err := s.registry.TakeIf("AB12C", func(session *models.StudySession) bool {
		return !session.Paused
	})
	s.ErrorIs(err, ErrSessionNotFound)

	_, err = s.registry.Get("AB12C")
	s.Require().NoError(err)

	taken, err := s.registry.TakeIf("AB12C", func(session *models.StudySession) bool {
		return session.Paused
	})
	s.Require().NoError(err)
	s.Equal("AB12C", taken.Code)
}

func (s *RegistryTestSuite) TestRemove_Idempotent() {
	s.Require().NoError(s.registry.Create(s.newSession("AB12C", "voice-1")))

	s.registry.Remove("AB12C")
	s.registry.Remove("AB12C")
	s.registry.Remove("NEVER")

	s.Empty(s.registry.List())

	// The channel is free again
	s.Require().NoError(s.registry.Create(s.newSession("AB12C", "voice-1")))
}

func (s *RegistryTestSuite) TestList_Sorted() {
	s.Require().NoError(s.registry.Create(s.newSession("ZZ000", "voice-1")))
	s.Require().NoError(s.registry.Create(s.newSession("AA000", "voice-2")))

	sessions := s.registry.List()
	s.Require().Len(sessions, 2)
	s.Equal("AA000", sessions[0].Code)
	s.Equal("ZZ000", sessions[1].Code)
}
