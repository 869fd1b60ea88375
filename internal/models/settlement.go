package models

// SettledMember is one member touched by a settlement
type SettledMember struct {
	UserID string
	Name   string
	Points int
}

// SettlementReport describes the outcome of crediting a voice channel
type SettlementReport struct {
	// VoiceChannelID is the channel that was settled
	VoiceChannelID string

	// GuildID is the server the points were credited in
	GuildID string

	// MinutesStudied is the study time credited to each member
	MinutesStudied int

	// PointsPerMember is the points credited to each member
	PointsPerMember int

	// Credited are the members whose ledger was updated
	Credited []*SettledMember

	// Failed are the members whose credit could not be written
	Failed []*SettledMember

	// UsedFallback indicates members were enumerated from the presence ledger
	UsedFallback bool

	// FallbackFailed indicates the fallback path could not run either
	FallbackFailed bool
}

// CreditedIDs returns the user IDs of credited members
func (r *SettlementReport) CreditedIDs() []string {
	return settledIDs(r.Credited)
}

// FailedIDs returns the user IDs of members that could not be credited
func (r *SettlementReport) FailedIDs() []string {
	return settledIDs(r.Failed)
}

func settledIDs(members []*SettledMember) []string {
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.UserID)
	}
	return ids
}
