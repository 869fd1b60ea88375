package platform

// Member is someone present in a voice channel
type Member struct {
	ID   string
	Name string
	Bot  bool
}

// MessageHandle identifies a posted prompt
type MessageHandle struct {
	ChannelID string
	MessageID string
}

// Reaction is a member's answer to a prompt
type Reaction struct {
	Option string
	UserID string
}

// HumanMembers drops bot accounts from a member list
func HumanMembers(members []*Member) []*Member {
	humans := make([]*Member, 0, len(members))
	for _, m := range members {
		if m == nil || m.Bot {
			continue
		}
		humans = append(humans, m)
	}
	return humans
}
