package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/kubedeploy/kubedeploy/internal/cli"
)

func main() {
	log.SetLevel(log.DebugLevel)
	log.SetReportTimestamp(true)
	log.SetReportCaller(true)

	rootCmd := cli.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
