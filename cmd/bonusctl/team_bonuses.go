package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/bonus-tracker/internal/domain/gamemode"
)

var (
	teamUserID   int64
	teamGameMode int
)

var teamBonusesCmd = &cobra.Command{
	Use:   "team-bonuses",
	Short: "Report bonus usage for one manager's team",
	RunE:  runTeamBonuses,
}

func init() {
	rootCmd.AddCommand(teamBonusesCmd)
	teamBonusesCmd.Flags().Int64Var(&teamUserID, "user-id", 0,
		"Dream Team user id (required)")
	teamBonusesCmd.Flags().IntVar(&teamGameMode, "game-mode", 0,
		"game mode id: 6 Dream League, 8 Champions League (defaults to the configured mode)")
	_ = teamBonusesCmd.MarkFlagRequired("user-id")
}

func runTeamBonuses(cmd *cobra.Command, args []string) error {
	svc, err := newReportService()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := svc.GetTeamBonuses(ctx, gamemode.ID(teamGameMode), teamUserID)
	if err != nil {
		return err
	}

	return printReport(report)
}
