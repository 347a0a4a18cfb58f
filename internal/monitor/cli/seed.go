package cli

import (
	"BPJS_Monitoring_Service/internal/monitor/bootstrap"
	"BPJS_Monitoring_Service/internal/monitor/registry"
	"BPJS_Monitoring_Service/internal/monitor/repository"
	"BPJS_Monitoring_Service/internal/monitor/service"
	"fmt"

	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the endpoint registry file into the database",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "registry file, defaults to MONITOR_REGISTRY_FILE")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, zapLogger, err := loadConfig()
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

	path := seedFile
	if path == "" {
		path = cfg.Monitor.RegistryFile
	}
	cfgs, err := registry.Load(path)
	if err != nil {
		return err
	}

	db, err := bootstrap.NewPostgres(cfg.Postgres)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	if sqlDB, e := db.DB(); e == nil {
		defer sqlDB.Close()
	}
	redisClient, err := bootstrap.NewRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	endpointService := service.NewEndpointService(bootstrap.NewEndpointRepository(cfg, db, redisClient), repository.NewProbeResultRepository(db), nil)
	n, err := endpointService.SeedEndpoints(cmd.Context(), cfgs)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorBox.Render(err.Error()))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), successBox.Render(fmt.Sprintf("Seeded %d endpoints from %s", n, path)))
	return nil
}
