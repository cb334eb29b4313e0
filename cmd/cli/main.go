package main

import (
	"fmt"
	"os"

	"github.com/crucial707/portfolio-api/cmd/cli/auth"
	"github.com/crucial707/portfolio-api/cmd/cli/portfolio"
	"github.com/crucial707/portfolio-api/cmd/cli/root"
)

func main() {
	rootCmd := root.GetRoot()
	auth.InitAuth(rootCmd)
	portfolio.InitPortfolio(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
