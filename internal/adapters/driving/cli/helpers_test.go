package cli

import (
	"bytes"
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/distil/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/distil/internal/connectors/filesystem"
	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/services"
	"github.com/custodia-labs/distil/internal/normalisers"
	"github.com/custodia-labs/distil/internal/normalisers/html"
	"github.com/custodia-labs/distil/internal/normalisers/markdown"
	"github.com/custodia-labs/distil/internal/normalisers/plaintext"
)

// sampleText has four sentences. Its top keywords in order are chase,
// mice, garden, sleep and sun.
const sampleText = "Cats chase mice in the garden. Cats sleep in the sun after lunch. " +
	"Dogs bark at cats and mice. The garden is quiet at night."

// fakeWatchService replays a fixed list of events.
type fakeWatchService struct {
	events []domain.WatchEvent
	err    error
	root   string
	opts   domain.AnalyzeOptions
}

func (f *fakeWatchService) Watch(
	_ context.Context,
	root string,
	opts domain.AnalyzeOptions,
) (<-chan domain.WatchEvent, error) {
	f.root = root
	f.opts = opts
	if f.err != nil {
		return nil, f.err
	}
	ch := make(chan domain.WatchEvent, len(f.events))
	for _, e := range f.events {
		ch <- e
	}
	close(ch)
	return ch, nil
}

// setupTestServices wires real services over an in-memory config store and
// returns a cleanup func that restores globals and flag defaults.
func setupTestServices() func() {
	origAnalysis := analysisService
	origDocument := documentService
	origSettings := settingsService
	origWatch := watchService

	registry := normalisers.NewRegistry(plaintext.New(), markdown.New(), html.New())
	SetServices(Services{
		Analysis: services.NewAnalysisService(),
		Document: services.NewDocumentService(registry, filesystem.Open),
		Settings: services.NewSettingsService(memory.NewConfigStore()),
		Watch:    &fakeWatchService{},
	})
	rootCmd.SetIn(strings.NewReader(""))

	return func() {
		analysisService = origAnalysis
		documentService = origDocument
		settingsService = origSettings
		watchService = origWatch
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
	}
}

// resetFlags restores every flag in the tree to its default, since the
// command globals survive between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns stdout and the error.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
