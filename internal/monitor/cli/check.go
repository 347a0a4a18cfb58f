package cli

import (
	"BPJS_Monitoring_Service/internal/monitor/bootstrap"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"BPJS_Monitoring_Service/internal/monitor/repository"
	"BPJS_Monitoring_Service/pkg/infra"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run one monitoring cycle and print the result of every endpoint",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, zapLogger, err := loadConfig()
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

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

	var publisher infra.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaWriter := infra.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.ResultTopic)
		defer kafkaWriter.Close()
		publisher = kafkaWriter
	}

	cooldownStore := repository.NewRedisCooldownRepository(redisClient, time.Now)
	policy := bootstrap.NewPolicy(cfg, cooldownStore, zapLogger)
	cycleService := bootstrap.NewCycleService(cfg, db, redisClient, publisher, policy, cooldownStore, zapLogger)

	summary, err := cycleService.RunCycle(cmd.Context())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorBox.Render("Monitoring cycle failed: "+err.Error()))
		return err
	}
	printSummary(cmd.OutOrStdout(), summary)
	return nil
}

// FormatResult renders one result as "name | outcome | code=X | Nms".
func FormatResult(r model.ProbeResult) string {
	return fmt.Sprintf("%s | %s | code=%s | %dms", r.EndpointName, r.Outcome, r.StatusCode, r.LatencyMs)
}

func printSummary(w io.Writer, summary model.CycleSummary) {
	fmt.Fprintln(w, title.Render(fmt.Sprintf("Monitoring cycle %s", summary.StartedAt.Format(time.DateTime))))
	for _, r := range summary.Results {
		fmt.Fprintln(w, outcomeStyle(r.Outcome).Render(FormatResult(r)))
	}
	fmt.Fprintln(w)
	stats := fmt.Sprintf("%d/%d up, uptime %.2f%%, avg %.2fms", summary.Success, summary.Total, summary.UptimePercentage, summary.AvgLatencyMs)
	if summary.Error > 0 {
		fmt.Fprintln(w, errorBox.Render(stats))
	} else {
		fmt.Fprintln(w, successBox.Render(stats))
	}
}
