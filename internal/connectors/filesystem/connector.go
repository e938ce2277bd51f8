package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driven"
	"github.com/custodia-labs/distil/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

const (
	// MaxFileSize is the largest file Read accepts (10 MiB).
	MaxFileSize = 10 << 20

	// DefaultEventRate is the number of change events emitted per second.
	DefaultEventRate = 20.0

	// DefaultEventBurst is the number of events emitted without waiting.
	DefaultEventBurst = 10
)

// textMIMETypes maps extensions the mime package does not know reliably.
var textMIMETypes = map[string]string{
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".txt":      "text/plain",
	".text":     "text/plain",
	".log":      "text/plain",
	".rst":      "text/plain",
	".htm":      "text/html",
	".html":     "text/html",
	".xhtml":    "text/html",
}

// Source reads and watches documents below a root directory.
type Source struct {
	sourceID string
	rootPath string
	limiter  *rate.Limiter

	mu       sync.Mutex
	closed   bool
	watchers []*fsnotify.Watcher
}

// Option configures a Source.
type Option func(*Source)

// WithEventRate limits emitted change events to perSecond with the given
// burst. A non-positive rate disables limiting.
func WithEventRate(perSecond float64, burst int) Option {
	return func(s *Source) {
		if perSecond <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	}
}

// New creates a filesystem source rooted at rootPath.
func New(sourceID, rootPath string, opts ...Option) *Source {
	s := &Source{
		sourceID: sourceID,
		rootPath: rootPath,
		limiter:  rate.NewLimiter(rate.Limit(DefaultEventRate), DefaultEventBurst),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open satisfies driven.SourceOpener with default options.
func Open(sourceID, rootPath string) driven.DocumentSource {
	return New(sourceID, rootPath)
}

// SourceID returns the source identifier.
func (s *Source) SourceID() string {
	return s.sourceID
}

// RootPath returns the watched directory.
func (s *Source) RootPath() string {
	return s.rootPath
}

// Read returns the file at uri. Directories return ErrInvalidInput and
// missing files ErrNotFound.
func (s *Source) Read(ctx context.Context, uri string) (*domain.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := resolvePath(s.rootPath, uri)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("read %s: %w", uri, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", uri, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("read %s: is a directory: %w", uri, domain.ErrInvalidInput)
	}

	return s.readFile(path, info)
}

func (s *Source) readFile(path string, info fs.FileInfo) (*domain.RawDocument, error) {
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("read %s: %d bytes exceeds %d: %w",
			path, info.Size(), MaxFileSize, domain.ErrInvalidInput)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &domain.RawDocument{
		SourceID: s.sourceID,
		URI:      path,
		MIMEType: detectMIMEType(path),
		Content:  content,
		Metadata: map[string]any{
			"size":     info.Size(),
			"modified": info.ModTime(),
		},
	}, nil
}

// Watch streams changes below the root until ctx is cancelled.
func (s *Source) Watch(ctx context.Context) (<-chan domain.RawDocumentChange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, fmt.Errorf("watch: %w", domain.ErrSourceClosed)
	}

	info, err := os.Stat(s.rootPath)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path error: %s is not a directory", s.rootPath)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := s.addTree(watcher, s.rootPath); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	s.watchers = append(s.watchers, watcher)

	changes := make(chan domain.RawDocumentChange)
	go s.watchLoop(ctx, watcher, changes)
	return changes, nil
}

// addTree watches dir and every non-hidden directory below it.
func (s *Source) addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && isHidden(s.relative(path)) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func (s *Source) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, changes chan<- domain.RawDocumentChange) {
	defer close(changes)
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !isHidden(s.relative(event.Name)) {
					if err := s.addTree(watcher, event.Name); err != nil {
						logger.Warn("watch new directory: %v", err)
					}
				}
			}

			change := s.handleFsEvent(event)
			if change == nil {
				continue
			}
			if s.limiter != nil {
				if err := s.limiter.Wait(ctx); err != nil {
					return
				}
			}
			select {
			case changes <- *change:
			case <-ctx.Done():
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// handleFsEvent converts an fsnotify event into a document change.
// Returns nil for directories, hidden files and events that do not
// affect content.
func (s *Source) handleFsEvent(event fsnotify.Event) *domain.RawDocumentChange {
	if isHidden(s.relative(event.Name)) {
		return nil
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		return &domain.RawDocumentChange{
			Type: domain.ChangeDeleted,
			Document: domain.RawDocument{
				SourceID: s.sourceID,
				URI:      event.Name,
				MIMEType: detectMIMEType(event.Name),
			},
		}
	}

	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return nil
	}

	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return nil
	}

	changeType := domain.ChangeUpdated
	if event.Has(fsnotify.Create) {
		changeType = domain.ChangeCreated
	}

	doc, err := s.readFile(event.Name, info)
	if err != nil {
		logger.Warn("read %s: %v", event.Name, err)
		return nil
	}
	return &domain.RawDocumentChange{Type: changeType, Document: *doc}
}

// Close stops every watcher. Safe to call more than once.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	for _, w := range s.watchers {
		_ = w.Close()
	}
	s.watchers = nil
	return nil
}

// relative returns path relative to the root, or path itself when it
// lies outside the root.
func (s *Source) relative(path string) string {
	rel, err := filepath.Rel(s.rootPath, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// detectMIMEType guesses a MIME type from the file extension.
// Files without an extension are treated as plain text.
func detectMIMEType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "text/plain"
	}
	if t, ok := textMIMETypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		if i := strings.Index(t, ";"); i >= 0 {
			t = strings.TrimSpace(t[:i])
		}
		return t
	}
	return "application/octet-stream"
}

// isHidden reports whether any element of path starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "" || part == "." || part == ".." {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
