package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/bonus-tracker/internal/domain/bonus"
	"github.com/riskibarqy/bonus-tracker/internal/domain/gamemode"
	"github.com/riskibarqy/bonus-tracker/internal/platform/logging"
)

const (
	defaultMaxLeagueTeams      = 100
	defaultLeagueFanoutWorkers = 8
	maxLeagueFanoutWorkers     = 64
)

// BonusDataProvider is the upstream port for raw team and league payloads.
// FetchLeague with leagueID 0 selects the main (global) table.
type BonusDataProvider interface {
	FetchUserTeam(ctx context.Context, modeID gamemode.ID, userID int64) (ExternalUserTeam, error)
	FetchLeague(ctx context.Context, modeID gamemode.ID, leagueID int64) (ExternalLeague, error)
}

type ExternalUserTeam struct {
	UserID      int64
	TeamName    string
	CreatorName string
	TotalPoints int64
	Bonuses     []bonus.UsageEvent
}

type ExternalLeague struct {
	LeagueID   int64
	LeagueName string
	SeasonID   int64
	Members    []ExternalLeagueMember
}

type ExternalLeagueMember struct {
	UserID     int64
	TeamName   string
	OwnerName  string
	TotalScore int64
	Position   int64
}

type UsedBonus struct {
	BonusID      int64     `json:"bonus_id"`
	BonusName    string    `json:"bonus_name"`
	UsageRoundID int64     `json:"usage_round_id"`
	UsageDate    time.Time `json:"usage_date"`
}

type TeamReport struct {
	UserID           int64       `json:"user_id"`
	TeamName         string      `json:"team_name"`
	CreatorName      string      `json:"creator_name"`
	TotalPoints      int64       `json:"total_points"`
	UsedBonuses      []UsedBonus `json:"used_bonuses"`
	RemainingBonuses []string    `json:"remaining_bonuses"`
	UsedCount        int         `json:"used_count"`
	RemainingCount   int         `json:"remaining_count"`
}

type LeagueReport struct {
	LeagueID   int64        `json:"league_id"`
	LeagueName string       `json:"league_name"`
	SeasonID   int64        `json:"season_id"`
	GameMode   string       `json:"game_mode"`
	Teams      []TeamReport `json:"teams"`
}

// mainLeagueName labels the global table, which carries no name upstream.
const mainLeagueName = "Main League Table"

type BonusReportConfig struct {
	DefaultMode    gamemode.ID
	MaxLeagueTeams int
	FanoutWorkers  int
}

func (c BonusReportConfig) normalize() BonusReportConfig {
	if c.DefaultMode == 0 {
		c.DefaultMode = gamemode.Default
	}
	if c.MaxLeagueTeams <= 0 {
		c.MaxLeagueTeams = defaultMaxLeagueTeams
	}
	if c.FanoutWorkers <= 0 {
		c.FanoutWorkers = defaultLeagueFanoutWorkers
	}
	if c.FanoutWorkers > maxLeagueFanoutWorkers {
		c.FanoutWorkers = maxLeagueFanoutWorkers
	}
	return c
}

type BonusReportService struct {
	provider BonusDataProvider
	cfg      BonusReportConfig
	logger   *logging.Logger
}

func NewBonusReportService(provider BonusDataProvider, cfg BonusReportConfig, logger *logging.Logger) *BonusReportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &BonusReportService{
		provider: provider,
		cfg:      cfg.normalize(),
		logger:   logger,
	}
}

// GetTeamBonuses reports which of the four bonuses a team has used this
// season. A zero modeID selects the configured default mode.
func (s *BonusReportService) GetTeamBonuses(ctx context.Context, modeID gamemode.ID, userID int64) (TeamReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusReportService.GetTeamBonuses")
	defer span.End()

	mode, err := s.resolveMode(modeID)
	if err != nil {
		return TeamReport{}, err
	}
	if userID <= 0 {
		return TeamReport{}, fmt.Errorf("%w: user id must be greater than zero", ErrInvalidInput)
	}

	team, err := s.provider.FetchUserTeam(ctx, mode.ID, userID)
	if err != nil {
		return TeamReport{}, fmt.Errorf("fetch user team user_id=%d mode=%d: %w", userID, mode.ID, err)
	}

	return buildTeamReport(team), nil
}

// GetLeagueBonuses reports bonus usage for every member of a league.
// leagueID 0 selects the main (global) table. Members whose team fetch fails
// are omitted from the report; each omission is logged with the user id.
func (s *BonusReportService) GetLeagueBonuses(ctx context.Context, modeID gamemode.ID, leagueID int64) (LeagueReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusReportService.GetLeagueBonuses")
	defer span.End()

	mode, err := s.resolveMode(modeID)
	if err != nil {
		return LeagueReport{}, err
	}
	if leagueID < 0 {
		return LeagueReport{}, fmt.Errorf("%w: league id must not be negative", ErrInvalidInput)
	}

	lg, err := s.provider.FetchLeague(ctx, mode.ID, leagueID)
	if err != nil {
		return LeagueReport{}, fmt.Errorf("fetch league league_id=%d mode=%d: %w", leagueID, mode.ID, err)
	}

	members := capLeagueMembers(lg.Members, s.cfg.MaxLeagueTeams)
	rows, err := s.fetchMemberReports(ctx, mode.ID, members)
	if err != nil {
		return LeagueReport{}, err
	}

	teams := make([]TeamReport, 0, len(rows))
	for _, row := range rows {
		if row.err != nil {
			s.logger.WarnContext(ctx, "skip league member: team fetch failed",
				"user_id", row.userID,
				"league_id", leagueID,
				"error", row.err,
			)
			continue
		}
		teams = append(teams, row.report)
	}

	return LeagueReport{
		LeagueID:   resolveLeagueID(lg.LeagueID, leagueID),
		LeagueName: resolveLeagueName(lg.LeagueName),
		SeasonID:   resolveSeasonID(lg.SeasonID, mode.ID),
		GameMode:   mode.Name,
		Teams:      teams,
	}, nil
}

type leagueMemberRow struct {
	index  int
	userID int64
	report TeamReport
	err    error
}

func (s *BonusReportService) fetchMemberReports(ctx context.Context, modeID gamemode.ID, members []ExternalLeagueMember) ([]leagueMemberRow, error) {
	if len(members) == 0 {
		return nil, nil
	}

	workerCount := normalizeFanoutWorkerCount(s.cfg.FanoutWorkers, len(members))
	results := make(chan leagueMemberRow, len(members))

	var fetchedCount atomic.Int32
	var skippedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for idx, member := range members {
		idx := idx
		member := member
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			team, err := s.provider.FetchUserTeam(ctx, modeID, member.UserID)
			if err != nil {
				skippedCount.Add(1)
				results <- leagueMemberRow{index: idx, userID: member.UserID, err: err}
				return
			}

			fetchedCount.Add(1)
			results <- leagueMemberRow{index: idx, userID: member.UserID, report: buildTeamReport(team)}
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit member fetch to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	// With a dead context every member fetch fails for the same systemic
	// reason; report that instead of an empty roster.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: league member fetch interrupted: %v", ErrDependencyUnavailable, err)
	}

	rows := make([]leagueMemberRow, 0, len(members))
	for row := range results {
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].index < rows[j].index
	})

	s.logger.DebugContext(ctx, "league member fetch finished",
		"member_count", len(members),
		"fetched_count", fetchedCount.Load(),
		"skipped_count", skippedCount.Load(),
		"worker_count", workerCount,
	)
	return rows, nil
}

// buildTeamReport partitions the fixed catalog into used and remaining
// bonuses. Used entries are ordered by usage date ascending, remaining names
// keep catalog order. Duplicate usages of one bonus id collapse to the
// latest occurrence.
func buildTeamReport(team ExternalUserTeam) TeamReport {
	latest := make(map[bonus.ID]bonus.UsageEvent, len(team.Bonuses))
	for _, event := range team.Bonuses {
		current, exists := latest[event.BonusID]
		if !exists {
			latest[event.BonusID] = event
			continue
		}
		if event.UsedAt.After(current.UsedAt) ||
			(event.UsedAt.Equal(current.UsedAt) && event.RoundID >= current.RoundID) {
			latest[event.BonusID] = event
		}
	}

	used := make([]UsedBonus, 0, len(latest))
	for _, event := range latest {
		name, _ := bonus.Name(event.BonusID)
		used = append(used, UsedBonus{
			BonusID:      int64(event.BonusID),
			BonusName:    name,
			UsageRoundID: event.RoundID,
			UsageDate:    event.UsedAt,
		})
	}
	sort.SliceStable(used, func(i, j int) bool {
		if !used[i].UsageDate.Equal(used[j].UsageDate) {
			return used[i].UsageDate.Before(used[j].UsageDate)
		}
		if used[i].UsageRoundID != used[j].UsageRoundID {
			return used[i].UsageRoundID < used[j].UsageRoundID
		}
		return used[i].BonusID < used[j].BonusID
	})

	remaining := make([]string, 0, bonus.Count()-len(latest))
	for _, def := range bonus.Catalog() {
		if _, usedAlready := latest[def.ID]; usedAlready {
			continue
		}
		remaining = append(remaining, def.Name)
	}

	return TeamReport{
		UserID:           team.UserID,
		TeamName:         team.TeamName,
		CreatorName:      team.CreatorName,
		TotalPoints:      team.TotalPoints,
		UsedBonuses:      used,
		RemainingBonuses: remaining,
		UsedCount:        len(used),
		RemainingCount:   len(remaining),
	}
}

func (s *BonusReportService) resolveMode(modeID gamemode.ID) (gamemode.Mode, error) {
	if modeID == 0 {
		modeID = s.cfg.DefaultMode
	}
	mode, ok := gamemode.ByID(modeID)
	if !ok {
		return gamemode.Mode{}, fmt.Errorf("%w: unsupported game mode id=%d", ErrInvalidInput, modeID)
	}
	return mode, nil
}

// capLeagueMembers truncates the roster to the configured limit and drops
// duplicate user ids keeping the first occurrence.
func capLeagueMembers(members []ExternalLeagueMember, limit int) []ExternalLeagueMember {
	seen := make(map[int64]struct{}, len(members))
	out := make([]ExternalLeagueMember, 0, len(members))
	for _, member := range members {
		if len(out) >= limit {
			break
		}
		if _, dup := seen[member.UserID]; dup {
			continue
		}
		seen[member.UserID] = struct{}{}
		out = append(out, member)
	}
	return out
}

func normalizeFanoutWorkerCount(value int, memberCount int) int {
	if memberCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = defaultLeagueFanoutWorkers
	}
	if value > maxLeagueFanoutWorkers {
		value = maxLeagueFanoutWorkers
	}
	if value > memberCount {
		value = memberCount
	}
	return value
}

func resolveLeagueID(payloadID int64, requestedID int64) int64 {
	if payloadID > 0 {
		return payloadID
	}
	return requestedID
}

func resolveLeagueName(name string) string {
	if name == "" {
		return mainLeagueName
	}
	return name
}

func resolveSeasonID(payloadSeasonID int64, modeID gamemode.ID) int64 {
	if payloadSeasonID > 0 {
		return payloadSeasonID
	}
	return int64(modeID)
}
