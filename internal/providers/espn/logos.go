package espn

import "strings"

// pickTeamLogo selects the best logo URL for a team. Scoreboard cards
// render on light backgrounds, so alternate/light variants are
// preferred and dark variants are a last resort. Returns "" when no
// usable candidate exists; callers fall back to text initials.
//
// Overrides are immutable per-team replacements injected through the
// provider Config, keyed by display name. They win over any candidate.
func pickTeamLogo(team teamResponse, overrides map[string]string) string {
	if override := overrides[team.DisplayName]; override != "" {
		return override
	}

	if len(team.Logos) > 0 {
		if href := firstAlternate(team.Logos); href != "" {
			return href
		}
		if href := firstNonDark(team.Logos); href != "" {
			return href
		}
		for _, logo := range team.Logos {
			if logo.Href != "" {
				return logo.Href
			}
		}
	}

	// Legacy single-logo field, still present on some college payloads.
	return team.Logo
}

func firstAlternate(logos []logoResponse) string {
	for _, logo := range logos {
		if logo.Href == "" {
			continue
		}
		href := strings.ToLower(logo.Href)
		if strings.Contains(href, "alternate") ||
			strings.Contains(href, "alt") ||
			strings.Contains(href, "light") ||
			strings.Contains(href, "white") {
			return logo.Href
		}
	}
	return ""
}

func firstNonDark(logos []logoResponse) string {
	for _, logo := range logos {
		if logo.Href == "" {
			continue
		}
		href := strings.ToLower(logo.Href)
		if !strings.Contains(href, "dark") && !strings.Contains(href, "black") {
			return logo.Href
		}
	}
	return ""
}
