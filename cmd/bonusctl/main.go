package main

import (
	"fmt"
	"os"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/bonus-tracker/external/dreamteam"
	"github.com/riskibarqy/bonus-tracker/internal/config"
	"github.com/riskibarqy/bonus-tracker/internal/platform/logging"
	"github.com/riskibarqy/bonus-tracker/internal/platform/resilience"
	"github.com/riskibarqy/bonus-tracker/internal/usecase"
)

var (
	// Version information set at build time.
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagEmail    string
	flagPassword string
	flagTimeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "bonusctl",
	Short: "Inspect Dream Team bonus chip usage from the terminal",
	Long: `bonusctl fetches a manager's team or a league table from the Sport5
Dream Team fantasy platform and reports which bonus chips each team
has used and which are still available.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bonusctl %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bonusctl: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEmail, "email", "",
		"Dream Team account email (overrides DREAMTEAM_EMAIL)")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "",
		"Dream Team account password (overrides DREAMTEAM_PASSWORD)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0,
		"upstream request timeout (overrides DREAMTEAM_TIMEOUT)")

	rootCmd.AddCommand(versionCmd)
}

func newReportService() (*usecase.BonusReportService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if (flagEmail == "") != (flagPassword == "") {
		return nil, fmt.Errorf("--email and --password must be provided together")
	}
	if flagEmail != "" {
		cfg.DreamTeamEmail = flagEmail
		cfg.DreamTeamPassword = flagPassword
	}
	if flagTimeout > 0 {
		cfg.DreamTeamTimeout = flagTimeout
	}

	client := dreamteam.NewClient(dreamteam.ClientConfig{
		BaseURL:  cfg.DreamTeamBaseURL,
		Email:    cfg.DreamTeamEmail,
		Password: cfg.DreamTeamPassword,
		Timeout:  cfg.DreamTeamTimeout,
		Logger:   logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.DreamTeamCircuitEnabled,
			FailureThreshold: cfg.DreamTeamCircuitFailureCount,
			OpenTimeout:      cfg.DreamTeamCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DreamTeamCircuitHalfOpenMaxReq,
		},
	})

	return usecase.NewBonusReportService(client, usecase.BonusReportConfig{
		DefaultMode:    cfg.DreamTeamGameMode,
		MaxLeagueTeams: cfg.LeagueMaxTeams,
		FanoutWorkers:  cfg.LeagueFanoutWorkers,
	}, logging.NewNop()), nil
}

func printReport(v any) error {
	out, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
