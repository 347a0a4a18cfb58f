// Package cli implements monitorctl, the operator command line of the monitor.
package cli

import (
	"BPJS_Monitoring_Service/internal/monitor/bootstrap"
	"BPJS_Monitoring_Service/internal/monitor/config"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:          "monitorctl",
	Short:        "Operate the BPJS endpoint monitor from the terminal",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "./.env", "dotenv file loaded before the environment")
}

func loadConfig() (config.AppConfig, *zap.Logger, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, nil, fmt.Errorf("load config: %w", err)
	}
	zapLogger, err := bootstrap.NewLogger(cfg.Server, "monitorctl")
	if err != nil {
		return config.AppConfig{}, nil, fmt.Errorf("set up logger: %w", err)
	}
	return cfg, zapLogger, nil
}
