// Command reelsearch filters a word list as you type and shows the matches on
// a reel that always settles with one word under the search field.
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ayn2op/reel"
	"github.com/ayn2op/reel/config"
	"github.com/ayn2op/reel/dictionary"
	"github.com/ayn2op/reel/help"
	"golang.org/x/term"
)

//go:embed words.txt
var defaultWords string

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	wordsPath := flag.String("words", "", "path to a word list, one word per line")
	logPath := flag.String("log", "", "path to a log file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *wordsPath != "" {
		cfg.WordList = *wordsPath
	}
	if *logPath != "" {
		cfg.LogFile = *logPath
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "reelsearch: stdout is not a terminal")
		os.Exit(1)
	}

	// The terminal belongs to the UI, so log lines go to a file or nowhere.
	log.SetOutput(io.Discard)
	var logFile io.Closer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logFile = f
		log.SetOutput(f)
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	os.Exit(shutdown(run(cfg), logFile, os.Stderr))
}

// shutdown reports err once, to the log file when there is one and to stderr
// otherwise, closes the log file and returns the exit code.
func shutdown(err error, logFile io.Closer, stderr io.Writer) int {
	if err != nil {
		if logFile != nil {
			log.Print(err)
		} else {
			fmt.Fprintln(stderr, err)
		}
	}
	if logFile != nil {
		if cerr := logFile.Close(); cerr != nil {
			fmt.Fprintln(stderr, cerr)
		}
	}
	if err != nil {
		return 1
	}
	return 0
}

func run(cfg config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dict := dictionary.New(dictionary.WithLogger(log.Default()))

	list := reel.NewReelList().
		SetItemHeight(cfg.ItemHeight).
		SetSettleDelay(cfg.SettleDelay.Duration).
		SetScrollBar(cfg.ScrollBar)
	input := reel.NewInputField().
		SetLabel("> ").
		SetPlaceholder("Loading words…").
		SetDisabled(true)

	search, err := reel.NewReelSearch(list, input)
	if err != nil {
		return err
	}
	list.SetTransformer(reel.NewAlphaTransformer(cfg.AlphaFactor))
	search.SetBorders(reel.BordersAll).SetTitle(" reelsearch ")

	input.SetChangedFunc(func(text string) {
		list.SetItems(dict.Query(text))
	})
	search.SetSelectionChangedFunc(func(previous, next int) {
		text, _ := list.SelectedText()
		log.Printf("selection %d -> %d %q", previous, next, text)
	})
	search.SetSelectedFunc(func(index int, text string) {
		log.Printf("selected %d %q", index, text)
		input.SetText(text)
		search.SetTitle(fmt.Sprintf(" %s ", text))
	})

	keys := list.KeyMap()
	footer := help.New().SetKeyMap(keys)
	app := reel.NewApplication()
	app.SetRoot(newFrame(search, footer, keys.Quit))

	done := loadWords(ctx, dict, cfg.WordList)
	go func() {
		err := <-done
		app.QueueUpdateDraw(func() {
			if err != nil {
				input.SetPlaceholder("No words: " + err.Error())
				return
			}
			log.Printf("loaded %d words", dict.Len())
			input.SetDisabled(false).SetPlaceholder(cfg.Placeholder)
			list.SetItems(dict.Query(input.GetText()))
		})
	}()

	return app.Run()
}

// loadWords loads the word list at path, or the built-in one when path is
// empty.
func loadWords(ctx context.Context, dict *dictionary.Dictionary, path string) <-chan error {
	if path == "" {
		return dict.LoadAsync(ctx, func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(defaultWords)), nil
		})
	}
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- dict.LoadFile(ctx, path)
	}()
	return done
}
