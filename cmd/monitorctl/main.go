package main

import (
	"BPJS_Monitoring_Service/internal/monitor/cli"
	"os"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
