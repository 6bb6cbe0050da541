package main

import (
	"fmt"
	"os"

	"github.com/stellarkit/accessctl/cmd/accessctl"
)

func main() {
	rootCmd := accessctl.BuildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
