package main

import (
	"fmt"
	"os"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/cmd/mcp/tools"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	s := server.NewMCPServer(
		"cost-dashboard-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterAnalysisTools(s, cfg.AWSRegion, cfg.AWSProfile)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
