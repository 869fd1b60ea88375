package models

import (
	"time"
)

// StudySession is a timed group study session bound to a voice channel
type StudySession struct {
	// Code is the short identifier members use to refer to the session
	Code string

	// HostID is the Discord user ID of the member who started the session
	HostID string

	// VoiceChannelID is the voice channel the session is bound to
	VoiceChannelID string

	// VoiceChannelName is the channel name before the session renamed it
	VoiceChannelName string

	// GuildID is the Discord server the session belongs to
	GuildID string

	// TextChannelID is where the session was started from
	TextChannelID string

	// RecordID links the session to its durable record
	RecordID string

	// StartTime is when the session started, shifted forward by every pause
	StartTime time.Time

	// Duration is the planned length in minutes
	Duration int

	// PointsPerMinute is the award rate fixed at creation
	PointsPerMinute int

	// Paused indicates the countdown is frozen
	Paused bool

	// PausedAt is when the current pause began
	PausedAt time.Time

	// RemainingTime is the minutes left, captured when the session was paused
	RemainingTime int

	// Active is true until the session is settled
	Active bool

	// TimerGeneration identifies the expiry timer currently armed for the session
	TimerGeneration int
}

// Elapsed returns the study time so far, excluding paused intervals
func (s *StudySession) Elapsed(now time.Time) time.Duration {
	end := now
	if s.Paused {
		end = s.PausedAt
	}

	elapsed := end.Sub(s.StartTime)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// ElapsedMinutes returns the elapsed study time in whole minutes
func (s *StudySession) ElapsedMinutes(now time.Time) int {
	return int(s.Elapsed(now) / time.Minute)
}

// RemainingMinutes returns the whole minutes left, clamped at zero
func (s *StudySession) RemainingMinutes(now time.Time) int {
	if s.Paused {
		return s.RemainingTime
	}

	remaining := s.Duration - s.ElapsedMinutes(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// TimeLeft returns the exact time until the planned duration is reached
func (s *StudySession) TimeLeft(now time.Time) time.Duration {
	left := time.Duration(s.Duration)*time.Minute - s.Elapsed(now)
	if left < 0 {
		return 0
	}
	return left
}

// MinutesStudied caps the elapsed minutes at the planned duration
func (s *StudySession) MinutesStudied(now time.Time) int {
	elapsed := s.ElapsedMinutes(now)
	if elapsed > s.Duration {
		return s.Duration
	}
	return elapsed
}

// Copy returns a detached copy of the session
func (s *StudySession) Copy() *StudySession {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
