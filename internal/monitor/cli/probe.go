package cli

import (
	"BPJS_Monitoring_Service/internal/monitor/bootstrap"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"BPJS_Monitoring_Service/internal/monitor/notification"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	probeMethod  string
	probeTimeout int
)

var probeCmd = &cobra.Command{
	Use:   "probe <url>",
	Short: "Probe an arbitrary url and explain the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runProbe,
}

func init() {
	probeCmd.Flags().StringVarP(&probeMethod, "method", "X", model.MethodGet, "HTTP method")
	probeCmd.Flags().IntVarP(&probeTimeout, "timeout", "t", 10, "timeout in seconds")
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, zapLogger, err := loadConfig()
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

	// one shot, cooldowns do not need to outlive the process
	policy := bootstrap.NewPolicy(cfg, notification.NewMemoryCooldownStore(time.Now), zapLogger)
	probeService := bootstrap.NewProbeService(cfg, policy)

	result, err := probeService.CustomProbe(cmd.Context(), model.CustomProbeRequest{
		URL:            args[0],
		Method:         strings.ToUpper(probeMethod),
		TimeoutSeconds: probeTimeout,
	})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorBox.Render(err.Error()))
		return err
	}
	printProbeResult(cmd.OutOrStdout(), args[0], result)
	return nil
}

func printProbeResult(w io.Writer, url string, r model.CustomProbeResult) {
	status := healthy
	if r.Status != model.CustomStatusSuccess {
		status = unhealthy
	}
	fmt.Fprintln(w, title.Render(url))
	fmt.Fprintf(w, "%-10s %s\n", dimText.Render("status"), status.Render(r.Status))
	fmt.Fprintf(w, "%-10s %s\n", dimText.Render("code"), r.Code)
	fmt.Fprintf(w, "%-10s %s\n", dimText.Render("message"), r.Message)
	fmt.Fprintf(w, "%-10s %s\n", dimText.Render("latency"), severityStyle(r.Severity).Render(fmt.Sprintf("%dms (%s)", r.ResponseTime, r.Severity)))
	fmt.Fprintf(w, "%-10s %t\n", dimText.Render("signed"), r.IsSigned)
	if r.BodyPreview != "" {
		fmt.Fprintf(w, "%-10s %s\n", dimText.Render("body"), r.BodyPreview)
	}
	if r.Help != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.Help)
	}
}
