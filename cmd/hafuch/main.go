// Command hafuch finds palindromes in Hebrew text.
//
// It wires the hexagonal architecture together: core services are
// constructed here with their driven adapters (config store, LLM client)
// and handed to the driving adapters (CLI, TUI, MCP server).
package main

import (
	"fmt"
	"os"

	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driven/ai"
	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driven/config/file"
	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/cli"
	"github.com/hafuch-labs/hafuch-cli/internal/core/services"
	"github.com/hafuch-labs/hafuch-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config store backs the settings service; an empty dir means ~/.hafuch.
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialise config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore, ai.NewConfigValidator())

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// The LLM is optional. When unconfigured or unreachable the scan still
	// works; only discovery and source lookup are disabled.
	llmService, err := ai.CreateAndValidateLLMService(&settings.LLM)
	if err != nil {
		logger.Warn("AI features disabled: %v", err)
		llmService = nil
	}
	if llmService != nil {
		llmService = ai.NewRateLimitedLLM(llmService, ai.DefaultRateLimit)
		defer llmService.Close()
	}

	discoveryService := services.NewDiscoveryService(llmService)

	promptStore, err := file.NewPromptStore("")
	if err != nil {
		logger.Warn("prompt store unavailable, using built-in prompts: %v", err)
	} else {
		discoveryService.SetPromptStore(promptStore)
	}

	scanService := services.NewScanService()

	cli.SetVersion(version)
	cli.SetServices(scanService, discoveryService, settingsService)

	return cli.Execute()
}
