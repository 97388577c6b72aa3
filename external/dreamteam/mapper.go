package dreamteam

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/bonus-tracker/internal/domain/bonus"
	"github.com/riskibarqy/bonus-tracker/internal/usecase"
)

// mapUserTeam converts a GetUserAndTeam payload into the provider-neutral
// record. Unknown payload fields are ignored; missing identity fields and
// unknown bonus ids are rejected.
func mapUserTeam(payload *teamPayload) (usecase.ExternalUserTeam, error) {
	if payload == nil {
		return usecase.ExternalUserTeam{}, fmt.Errorf("%w: user team payload is empty", usecase.ErrMalformedResponse)
	}

	team := payload.UserTeam
	if team == nil {
		return usecase.ExternalUserTeam{}, fmt.Errorf("%w: user team payload has no userTeam object", usecase.ErrMalformedResponse)
	}
	if team.UserID <= 0 {
		return usecase.ExternalUserTeam{}, fmt.Errorf("%w: user team payload has no user id", usecase.ErrMalformedResponse)
	}

	name := strings.TrimSpace(team.Name)
	if name == "" {
		return usecase.ExternalUserTeam{}, fmt.Errorf("%w: user team payload has no team name", usecase.ErrMalformedResponse)
	}

	events := make([]bonus.UsageEvent, 0, len(team.BonusesData))
	for i, item := range team.BonusesData {
		event, err := mapUsageEvent(item)
		if err != nil {
			return usecase.ExternalUserTeam{}, fmt.Errorf("bonus usage at index %d: %w", i, err)
		}
		events = append(events, event)
	}

	return usecase.ExternalUserTeam{
		UserID:      team.UserID,
		TeamName:    name,
		CreatorName: strings.TrimSpace(team.CreatorName),
		TotalPoints: team.Points,
		Bonuses:     events,
	}, nil
}

func mapUsageEvent(item bonusUsageItem) (bonus.UsageEvent, error) {
	usedAt, err := time.Parse(time.RFC3339, strings.TrimSpace(item.UsageDate))
	if err != nil {
		return bonus.UsageEvent{}, fmt.Errorf("%w: parse usage date %q: %v", usecase.ErrMalformedResponse, item.UsageDate, err)
	}

	event := bonus.UsageEvent{
		BonusID: bonus.ID(item.BonusID),
		RoundID: item.UsageRoundID,
		UsedAt:  usedAt,
	}
	if err := event.Validate(); err != nil {
		return bonus.UsageEvent{}, fmt.Errorf("%w: %v", usecase.ErrMalformedResponse, err)
	}

	return event, nil
}

// mapLeague converts a GetLeagueData payload. The main league table arrives
// without a customLeague object; its identity falls back to the caller's
// request in the usecase layer.
func mapLeague(payload *leaguePayload) (usecase.ExternalLeague, error) {
	if payload == nil {
		return usecase.ExternalLeague{}, fmt.Errorf("%w: league payload is empty", usecase.ErrMalformedResponse)
	}

	out := usecase.ExternalLeague{
		LeagueName: strings.TrimSpace(payload.LeagueName),
	}
	if payload.CustomLeague != nil {
		out.LeagueID = payload.CustomLeague.ID
		out.SeasonID = payload.CustomLeague.SeasonID
		if out.LeagueName == "" {
			out.LeagueName = strings.TrimSpace(payload.CustomLeague.Name)
		}
	}

	members := make([]usecase.ExternalLeagueMember, 0, len(payload.Teams))
	for i, team := range payload.Teams {
		if team.UserID <= 0 {
			return usecase.ExternalLeague{}, fmt.Errorf("%w: league team at index %d has no user id", usecase.ErrMalformedResponse, i)
		}
		members = append(members, usecase.ExternalLeagueMember{
			UserID:     team.UserID,
			TeamName:   strings.TrimSpace(team.Name),
			OwnerName:  strings.TrimSpace(team.UserName),
			TotalScore: team.TotalScore,
			Position:   team.Position,
		})
	}
	out.Members = members

	return out, nil
}
