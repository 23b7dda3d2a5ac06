package espn

import "testing"

func TestPickTeamLogoPrefersAlternate(t *testing.T) {
	team := teamResponse{
		Logos: []logoResponse{
			{Href: "https://cdn.example.com/logos/500-dark.png"},
			{Href: "https://cdn.example.com/logos/500-alternate.png"},
		},
	}

	got := pickTeamLogo(team, nil)
	if got != "https://cdn.example.com/logos/500-alternate.png" {
		t.Fatalf("expected alternate logo, got %q", got)
	}
}

func TestPickTeamLogoSkipsDarkVariants(t *testing.T) {
	team := teamResponse{
		Logos: []logoResponse{
			{Href: "https://cdn.example.com/logos/500-dark.png"},
			{Href: "https://cdn.example.com/logos/500-black.png"},
			{Href: "https://cdn.example.com/logos/500.png"},
		},
	}

	got := pickTeamLogo(team, nil)
	if got != "https://cdn.example.com/logos/500.png" {
		t.Fatalf("expected non-dark logo, got %q", got)
	}
}

func TestPickTeamLogoFallsBackToFirstUsable(t *testing.T) {
	team := teamResponse{
		Logos: []logoResponse{
			{Href: ""},
			{Href: "https://cdn.example.com/logos/500-dark.png"},
		},
	}

	got := pickTeamLogo(team, nil)
	if got != "https://cdn.example.com/logos/500-dark.png" {
		t.Fatalf("expected first usable candidate, got %q", got)
	}
}

func TestPickTeamLogoLegacyField(t *testing.T) {
	team := teamResponse{Logo: "https://cdn.example.com/legacy.png"}

	got := pickTeamLogo(team, nil)
	if got != "https://cdn.example.com/legacy.png" {
		t.Fatalf("expected legacy logo, got %q", got)
	}
}

func TestPickTeamLogoNoCandidates(t *testing.T) {
	if got := pickTeamLogo(teamResponse{}, nil); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
	if got := pickTeamLogo(teamResponse{Logos: []logoResponse{{Href: ""}}}, nil); got != "" {
		t.Fatalf("expected empty result for blank hrefs, got %q", got)
	}
}

func TestPickTeamLogoOverrideWins(t *testing.T) {
	team := teamResponse{
		DisplayName: "Home U",
		Logos:       []logoResponse{{Href: "https://cdn.example.com/logos/alternate.png"}},
	}
	overrides := map[string]string{"Home U": "https://assets.example.com/home-u.svg"}

	got := pickTeamLogo(team, overrides)
	if got != "https://assets.example.com/home-u.svg" {
		t.Fatalf("expected override, got %q", got)
	}
}
