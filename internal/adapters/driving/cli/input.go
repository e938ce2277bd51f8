package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// maxStdinBytes caps piped input.
const maxStdinBytes = 10 * 1024 * 1024

var errNoInput = errors.New("no input: pass text as arguments, use --file, or pipe text to stdin")

// readInput resolves the text to analyse. Positional arguments win over
// --file, which wins over piped stdin.
func readInput(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if file != "" {
		if documentService == nil {
			return "", errors.New("document service not configured")
		}
		doc, err := documentService.Open(cmd.Context(), file)
		if err != nil {
			return "", err
		}
		return doc.Content, nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		return "", errNoInput
	}

	data, err := io.ReadAll(io.LimitReader(in, maxStdinBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if len(data) > maxStdinBytes {
		return "", fmt.Errorf("stdin exceeds %d bytes: %w", maxStdinBytes, domain.ErrInvalidInput)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errNoInput
	}

	return normaliseStdin(cmd, data)
}

// normaliseStdin runs piped bytes through the plain text normaliser so
// stdin gets the same encoding checks as files.
func normaliseStdin(cmd *cobra.Command, data []byte) (string, error) {
	if documentService == nil {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("stdin: %w", domain.ErrInvalidInputType)
		}
		return string(data), nil
	}

	doc, err := documentService.Normalise(cmd.Context(), &domain.RawDocument{
		SourceID: "stdin",
		URI:      "stdin",
		MIMEType: "text/plain",
		Content:  data,
	})
	if err != nil {
		return "", err
	}
	return doc.Content, nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r any) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
