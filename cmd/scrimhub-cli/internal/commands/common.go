package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/MGTheTrain/scrimhub/internal/bootstrap"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "configs/rest-app.yaml"

// configPath resolves --config, then CONFIG_PATH, then the default location
func configPath(cmd *cobra.Command) string {
	if flag := cmd.Flag("config"); flag != nil && flag.Value.String() != "" {
		return flag.Value.String()
	}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return defaultConfigPath
}

func loadConfig(cmd *cobra.Command) (*config.RestConfig, logger.Logger, error) {
	cfg, err := config.InitializeRestConfig(configPath(cmd))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	// Operators read CLI output on the terminal whatever the server logs to
	settings := cfg.Logger
	settings.LogType = config.LogTypeConsole
	if err := logger.InitLogger(&settings); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log, err := logger.GetLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get logger instance: %w", err)
	}
	return cfg, log, nil
}

// withRuntime runs fn against a fully wired application and releases it afterwards
func withRuntime(cmd *cobra.Command, fn func(ctx context.Context, rt *bootstrap.Runtime, cfg *config.RestConfig, log logger.Logger) error) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.Close(); err != nil {
			log.Error("Failed to release resources: ", err)
		}
	}()

	return fn(ctx, rt, cfg, log)
}
