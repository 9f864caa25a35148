package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MarkoPoloResearchLab/hotel/internal/demobackend"
	"github.com/MarkoPoloResearchLab/hotel/internal/oplog"
	"github.com/MarkoPoloResearchLab/hotel/internal/store"
	"github.com/MarkoPoloResearchLab/hotel/pkg/hotel"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	flagListenAddr       = "listen-addr"
	flagDatabaseURL      = "database-url"
	flagAllowedOrigins   = "allowed-origins"
	configKeyListenAddr  = "listen_addr"
	configKeyDatabaseURL = "database_url"
	configKeyOrigins     = "allowed_origins"
	defaultListenAddr    = ":8090"
)

type runtimeConfig struct {
	ListenAddr     string
	DatabaseURL    string
	AllowedOrigins []string
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hoteld: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := &runtimeConfig{}
	cmd := &cobra.Command{
		Use:           "hoteld",
		Short:         "Room booking demo server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}

	cmd.Flags().String(flagListenAddr, defaultListenAddr, "HTTP listen address")
	cmd.Flags().String(flagDatabaseURL, store.DSNMemory, "reservation store DSN (memory, sqlite://path, or a sqlite file path)")
	cmd.Flags().String(flagAllowedOrigins, "", "comma-separated list of allowed CORS origins")

	return cmd
}

func loadConfig(cmd *cobra.Command, cfg *runtimeConfig) error {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindEnv(configKeyListenAddr, "HOTEL_LISTEN_ADDR"); err != nil {
		return err
	}
	if err := viper.BindEnv(configKeyDatabaseURL, "HOTEL_DATABASE_URL"); err != nil {
		return err
	}
	if err := viper.BindEnv(configKeyOrigins, "HOTEL_ALLOWED_ORIGINS"); err != nil {
		return err
	}

	if err := viper.BindPFlag(configKeyListenAddr, cmd.Flags().Lookup(flagListenAddr)); err != nil {
		return err
	}
	if err := viper.BindPFlag(configKeyDatabaseURL, cmd.Flags().Lookup(flagDatabaseURL)); err != nil {
		return err
	}
	if err := viper.BindPFlag(configKeyOrigins, cmd.Flags().Lookup(flagAllowedOrigins)); err != nil {
		return err
	}

	cfg.ListenAddr = viper.GetString(configKeyListenAddr)
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	cfg.DatabaseURL = viper.GetString(configKeyDatabaseURL)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = store.DSNMemory
	}
	cfg.AllowedOrigins = demobackend.ParseAllowedOrigins(viper.GetString(configKeyOrigins))
	return nil
}

func runServer(ctx context.Context, cfg *runtimeConfig) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	reservationStore, cleanup, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("store open: %w", err)
	}
	defer func() { _ = cleanup() }()

	clock := func() time.Time { return time.Now().UTC() }
	bookingService, err := hotel.NewService(
		hotel.NewCatalog(),
		reservationStore,
		clock,
		hotel.WithOperationLogger(oplog.New(logger)),
	)
	if err != nil {
		return fmt.Errorf("booking service init: %w", err)
	}

	if err := bookingService.LoadSeed(ctx, hotel.DefaultSeed()); err != nil {
		return fmt.Errorf("seed load: %w", err)
	}

	shellConfig := demobackend.Config{
		ListenAddr:     cfg.ListenAddr,
		AllowedOrigins: cfg.AllowedOrigins,
	}
	if err := shellConfig.Validate(); err != nil {
		return err
	}
	return demobackend.Run(ctx, shellConfig, bookingService, logger)
}
