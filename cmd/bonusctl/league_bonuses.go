package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/bonus-tracker/internal/domain/gamemode"
)

var (
	leagueID       int64
	leagueGameMode int
)

var leagueBonusesCmd = &cobra.Command{
	Use:   "league-bonuses",
	Short: "Report bonus usage for every team in a league",
	RunE:  runLeagueBonuses,
}

func init() {
	rootCmd.AddCommand(leagueBonusesCmd)
	leagueBonusesCmd.Flags().Int64Var(&leagueID, "league-id", 0,
		"custom league id (omit for the main league table)")
	leagueBonusesCmd.Flags().IntVar(&leagueGameMode, "game-mode", 0,
		"game mode id: 6 Dream League, 8 Champions League (defaults to the configured mode)")
}

func runLeagueBonuses(cmd *cobra.Command, args []string) error {
	svc, err := newReportService()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := svc.GetLeagueBonuses(ctx, gamemode.ID(leagueGameMode), leagueID)
	if err != nil {
		return err
	}

	return printReport(report)
}
