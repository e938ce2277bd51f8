// Command distil extracts keywords and extractive summaries from text.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/distil/internal/adapters/driven/config/env"
	"github.com/custodia-labs/distil/internal/adapters/driven/config/file"
	"github.com/custodia-labs/distil/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/distil/internal/adapters/driving/cli"
	"github.com/custodia-labs/distil/internal/connectors/filesystem"
	"github.com/custodia-labs/distil/internal/core/ports/driven"
	"github.com/custodia-labs/distil/internal/core/services"
	"github.com/custodia-labs/distil/internal/normalisers"
	"github.com/custodia-labs/distil/internal/normalisers/docx"
	"github.com/custodia-labs/distil/internal/normalisers/eml"
	"github.com/custodia-labs/distil/internal/normalisers/html"
	"github.com/custodia-labs/distil/internal/normalisers/markdown"
	"github.com/custodia-labs/distil/internal/normalisers/plaintext"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := env.LoadDotEnv(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}

	configStore := env.NewConfigStore(openConfigStore(), env.DefaultPrefix)

	registry := normalisers.NewRegistry(
		plaintext.New(),
		markdown.New(),
		html.New(),
		docx.New(),
		eml.New(),
	)

	analysisService := services.NewAnalysisService()
	documentService := services.NewDocumentService(registry, filesystem.Open)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Analysis: analysisService,
		Document: documentService,
		Settings: services.NewSettingsService(configStore),
		Watch:    services.NewWatchService(documentService, analysisService, filesystem.Open),
	})

	return cli.Execute(ctx)
}

// openConfigStore opens ~/.distil/config.toml, falling back to an
// in-memory store when the home directory is unusable.
func openConfigStore() driven.ConfigStore {
	dir, err := file.DefaultDir()
	if err == nil {
		var store *file.ConfigStore
		store, err = file.NewConfigStore(dir)
		if err == nil {
			return store
		}
	}
	fmt.Fprintf(os.Stderr, "warning: settings will not persist: %v\n", err)
	return memory.NewConfigStore()
}
