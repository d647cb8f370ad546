package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/waqt-dev/waqt/internal/cli"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=v1.0.0"
var version = "dev"

func main() {
	// A .env in the working directory can carry WAQT_* overrides; a
	// missing file is fine.
	_ = godotenv.Load()

	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
