package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/bonus-tracker/internal/domain/bonus"
	"github.com/riskibarqy/bonus-tracker/internal/domain/gamemode"
	usecasemock "github.com/riskibarqy/bonus-tracker/internal/mocks/usecase"
	"github.com/riskibarqy/bonus-tracker/internal/platform/logging"
	"github.com/riskibarqy/bonus-tracker/internal/usecase"
	"github.com/stretchr/testify/mock"
)

func TestBonusReportService_GetTeamBonuses_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewBonusDataProvider(t)

	provider.
		On("FetchUserTeam", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), gamemode.DreamLeague, int64(1001)).
		Return(usecase.ExternalUserTeam{
			UserID:      1001,
			TeamName:    "Test FC",
			CreatorName: "Test Creator",
			TotalPoints: 1074,
			Bonuses: []bonus.UsageEvent{
				{BonusID: bonus.FifteenSubs, RoundID: 125, UsedAt: time.Date(2025, time.December, 19, 14, 4, 9, 0, time.UTC)},
			},
		}, nil).
		Once()

	svc := usecase.NewBonusReportService(provider, usecase.BonusReportConfig{}, logging.NewNop())

	report, err := svc.GetTeamBonuses(ctx, 0, 1001)
	if err != nil {
		t.Fatalf("get team bonuses: %v", err)
	}
	if report.UsedCount != 1 || report.RemainingCount != 3 {
		t.Fatalf("unexpected counts: used=%d remaining=%d", report.UsedCount, report.RemainingCount)
	}
	if report.UsedBonuses[0].BonusName != "15 Subs" {
		t.Fatalf("unexpected used bonus name: %s", report.UsedBonuses[0].BonusName)
	}
}

func TestAuthService_Login_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sessions := usecasemock.NewSessionManager(t)

	sessions.
		On("SwapCredentials", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "user@example.com", "secret").
		Return(nil).
		Once()
	sessions.
		On("Status").
		Return(usecase.SessionStatus{Authenticated: true, Email: "u***@example.com"}).
		Once()

	svc := usecase.NewAuthService(sessions, logging.NewNop())

	status, err := svc.Login(ctx, "user@example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !status.Authenticated || status.Email != "u***@example.com" {
		t.Fatalf("unexpected status: %+v", status)
	}
}
