// Package dictionary holds the word list a reel search filters. Words are
// loaded once, lowercased and kept in file order; queries return the words
// that start with a prefix, compared under Unicode case folding.
package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrLoad wraps every error that made a load fail.
var ErrLoad = errors.New("dictionary: load failed")

// Status is the load state of a Dictionary.
type Status int

const (
	NotLoaded Status = iota
	Loading
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case NotLoaded:
		return "not loaded"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Option configures a Dictionary.
type Option func(*Dictionary)

// WithLogger sets the logger load failures are reported to. The default
// discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(d *Dictionary) {
		if logger != nil {
			d.logger = logger
		}
	}
}

type entry struct {
	word   string
	folded string
}

// Dictionary is a word list that can be loaded from any goroutine and queried
// from another. The zero value is not usable; call New.
type Dictionary struct {
	logger *log.Logger
	group  singleflight.Group

	mu      sync.RWMutex
	entries []entry
	status  Status
	err     error
}

// New returns an empty dictionary.
func New(opts ...Option) *Dictionary {
	d := &Dictionary{
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load replaces the word list with the lines read from r. Blank lines are
// skipped. On failure the list is left empty and the status is Failed.
func (d *Dictionary) Load(ctx context.Context, r io.Reader) error {
	d.setStatus(Loading)

	entries, err := read(ctx, r)
	if err != nil {
		return d.fail(err)
	}

	d.mu.Lock()
	d.entries = entries
	d.status = Loaded
	d.err = nil
	d.mu.Unlock()
	return nil
}

// LoadFile loads the word list from the file at path. Concurrent calls for
// the same path share a single read.
func (d *Dictionary) LoadFile(ctx context.Context, path string) error {
	_, err, _ := d.group.Do(path, func() (any, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, d.fail(err)
		}
		defer f.Close()
		return nil, d.Load(ctx, f)
	})
	return err
}

// LoadAsync loads the word list on a new goroutine. The returned channel
// receives the outcome, nil on success, and is closed afterwards.
func (d *Dictionary) LoadAsync(ctx context.Context, open func() (io.ReadCloser, error)) <-chan error {
	done := make(chan error, 1)
	d.setStatus(Loading)
	go func() {
		defer close(done)

		rc, err := open()
		if err != nil {
			done <- d.fail(err)
			return
		}
		defer rc.Close()
		done <- d.Load(ctx, rc)
	}()
	return done
}

// IsLoaded reports whether a load completed successfully.
func (d *Dictionary) IsLoaded() bool {
	return d.Status() == Loaded
}

// Status returns the load state.
func (d *Dictionary) Status() Status {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status
}

// Err returns the error of the last failed load.
func (d *Dictionary) Err() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.err
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// Query returns the words starting with prefix, ignoring case, in the order
// they were loaded. The result is empty, never nil, when prefix is empty or
// no list is loaded.
func (d *Dictionary) Query(prefix string) []string {
	matches := []string{}
	if prefix == "" {
		return matches
	}
	folded := cases.Fold().String(prefix)

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.status != Loaded {
		return matches
	}
	for _, e := range d.entries {
		if strings.HasPrefix(e.folded, folded) {
			matches = append(matches, e.word)
		}
	}
	return matches
}

func (d *Dictionary) setStatus(status Status) {
	d.mu.Lock()
	d.status = status
	d.mu.Unlock()
}

func (d *Dictionary) fail(err error) error {
	err = fmt.Errorf("%w: %w", ErrLoad, err)
	d.logger.Printf("dictionary: %v", err)

	d.mu.Lock()
	d.entries = nil
	d.status = Failed
	d.err = err
	d.mu.Unlock()
	return err
}

func read(ctx context.Context, r io.Reader) ([]entry, error) {
	lower := cases.Lower(language.Und)
	fold := cases.Fold()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var entries []entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		word := lower.String(line)
		entries = append(entries, entry{word: word, folded: fold.String(word)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
