// main is the entry point for the coursepulse CLI.
package main

import (
	"os"

	"github.com/coursepulse/coursepulse/cmd"
	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/coursepulse/coursepulse/internal/resultstore"
)

func main() {
	// The store manager is shared by every command and the MCP server.
	cmd.SetStoreManager(resultstore.Manager)
	defer resultstore.CloseStore()

	err := cmd.Execute()

	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}

	if err != nil {
		contract.LogWarn("Command failed", err)
		resultstore.CloseStore()
		os.Exit(1)
	}
}
