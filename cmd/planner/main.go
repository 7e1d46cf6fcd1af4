package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"trip_planner/internal/adapters/console"
	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/app"
	"trip_planner/internal/domain"
	"trip_planner/internal/shared"
	"trip_planner/internal/storage/catalogfile"
)

var (
	v       = shared.NewViper()
	cfg     shared.Config
	catalog *domain.Catalog
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Plan a short trip to one of a few cities",
	Long: `planner asks for your name, budget, trip length and destination,
then suggests activities and restaurants picked at random for that city.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runPlan,
}

var destinationsCmd = &cobra.Command{
	Use:   "destinations",
	Short: "List the cities in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return console.NewPresenter(cmd.OutOrStdout()).Destinations(catalog)
	},
}

func main() {
	rootCmd.AddCommand(destinationsCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("planner failed")
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("catalog", "", "YAML file replacing the built-in catalog")
	f.Uint64("seed", 0, "seed for sampling (0 picks one at random)")
	f.String("metrics-file", "", "write Prometheus metrics to this file on exit")
	f.String("log-level", "warn", "log level: debug, info, warn, error")
	f.String("env", "prod", "environment; dev switches to console logs")

	for key, name := range map[string]string{
		shared.KeyCatalog:     "catalog",
		shared.KeySeed:        "seed",
		shared.KeyMetricsFile: "metrics-file",
		shared.KeyLogLevel:    "log-level",
		shared.KeyAppEnv:      "env",
	} {
		if err := v.BindPFlag(key, f.Lookup(name)); err != nil {
			log.Fatal().Err(err).Str("flag", name).Msg("bind flag failed")
		}
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg = shared.Load(v)

	// logs go to stderr; stdout is the conversation
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel, cmd.ErrOrStderr())

	if cfg.CatalogPath == "" {
		catalog = shared.DefaultCatalog()
		return nil
	}
	c, err := catalogfile.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	log.Info().Str("path", cfg.CatalogPath).Int("destinations", c.Len()).Msg("catalog loaded")
	catalog = c
	return nil
}

func runPlan(cmd *cobra.Command, _ []string) error {
	reg := observability.InitRegistry()
	rec := observability.Recorder{}

	svc := app.NewPlanService(catalog, app.NewRand(cfg.Seed), rec)
	sess := app.NewSession(svc,
		console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		console.NewPresenter(cmd.OutOrStdout()),
		rec,
	)

	err := sess.Run(cmd.Context())

	if cfg.MetricsFile != "" {
		if werr := observability.WriteTextfile(cfg.MetricsFile, reg); werr != nil {
			log.Error().Err(werr).Str("path", cfg.MetricsFile).Msg("write metrics failed")
		}
	}

	// already explained to the traveler; not a process failure
	if err != nil && app.IsHandled(err) {
		log.Warn().Err(err).Msg("no itinerary produced")
		return nil
	}
	return err
}
