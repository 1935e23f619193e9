package ranking

// Badges beyond the level tiers. The level names double as badge names, so
// a member's badge list always starts with their current level.
const (
	BadgeTopContributor      = "Top Contributor"
	BadgeEventOrganizer      = "Event Organizer"
	BadgeSponsorshipChampion = "Sponsorship Champion"
)

// Count thresholds for the special badges.
const (
	EventOrganizerMinLeads        = 5
	SponsorshipChampionMinSponsor = 3
)

// BadgesFor derives the badge list from a point total and a contribution
// history. The current level badge is always first; order is insertion
// order with duplicates removed. Top Contributor is population-relative and
// is applied by the leaderboard, never here.
func BadgesFor(points int, contributions []Contribution) []string {
	badges := []string{string(LevelFor(points))}

	leadCount := 0
	sponsorshipCount := 0
	for _, c := range contributions {
		switch c.Action {
		case ActionLeadEvent:
			leadCount++
		case ActionBringSponsorship:
			sponsorshipCount++
		}
	}

	if leadCount >= EventOrganizerMinLeads {
		badges = append(badges, BadgeEventOrganizer)
	}
	if sponsorshipCount >= SponsorshipChampionMinSponsor {
		badges = append(badges, BadgeSponsorshipChampion)
	}

	return dedupeBadges(badges)
}

func dedupeBadges(badges []string) []string {
	seen := make(map[string]struct{}, len(badges))
	out := badges[:0]
	for _, b := range badges {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out
}

func appendBadge(badges []string, badge string) []string {
	for _, b := range badges {
		if b == badge {
			return badges
		}
	}
	return append(badges, badge)
}

func removeBadge(badges []string, badge string) []string {
	out := badges[:0]
	for _, b := range badges {
		if b != badge {
			out = append(out, b)
		}
	}
	return out
}
