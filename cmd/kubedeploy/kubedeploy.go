package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kubedeploy/kubedeploy/internal/cli"
)

func main() {
	logLevelStr := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	logLevel := log.InfoLevel
	if logLevelStr == "DEBUG" {
		logLevel = log.DebugLevel
	} else if logLevelStr == "ERROR" {
		logLevel = log.ErrorLevel
	}

	log.SetLevel(logLevel)
	log.SetReportTimestamp(true)

	rootCmd := cli.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
