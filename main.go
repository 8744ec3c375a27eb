package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/config"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/tui"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/wordstore"
)

var (
	configPath string
	playDaily  bool
	playLogTo  string

	importDB      string
	importAnswers string
	importAllowed string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "wordle",
		Short:        "Five-letter word guessing game",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file (default $WORDLE_CONFIG)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the game over HTTP",
		RunE:  runServe,
	})

	play := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE:  runPlay,
	}
	play.Flags().BoolVar(&playDaily, "daily", false, "start with the word of the day")
	play.Flags().StringVar(&playLogTo, "log-file", "", "write logs to this file instead of discarding them")
	root.AddCommand(play)

	root.AddCommand(newWordsCmd())
	return root
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage word lists",
	}

	imp := &cobra.Command{
		Use:   "import",
		Short: "Import text word lists into the SQLite word store",
		RunE:  runWordsImport,
	}
	imp.Flags().StringVar(&importDB, "db", "", "SQLite database path (default $WORDS_DB)")
	imp.Flags().StringVar(&importAnswers, "answers", "", "file with possible secrets, one per line")
	imp.Flags().StringVar(&importAllowed, "allowed", "", "file with extra valid guesses, one per line")
	cmd.AddCommand(imp)

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show the size of the configured word lists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(os.Stderr)
			if err != nil {
				return err
			}
			lists, err := loadLists(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			a, d := lists.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "answers: %d\ndictionary: %d\n", a, d)
			return nil
		},
	})
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(os.Stderr)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lists, err := loadLists(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to load word lists")
		return err
	}
	a, d := lists.Stats()
	log.Info().Int("answers", a).Int("dictionary", d).Msg("word lists loaded")

	srv := httpserver.New(store.NewMemoryStore(), lists, cfg)
	log.Info().Str("port", cfg.Port).Msg("starting go-server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	var logOut io.Writer = io.Discard
	if playLogTo != "" {
		f, err := os.OpenFile(playLogTo, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	cfg, err := loadConfig(logOut)
	if err != nil {
		return err
	}
	lists, err := loadLists(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	first := ""
	if playDaily {
		var date string
		first, date = daily.NewPicker(lists.Answers, cfg.DailySalt, nil).Today()
		log.Info().Str("date", date).Msg("daily game")
	}
	session := game.New(lists.Dict, words.NewRandomPicker(lists.Answers), first)
	log.Info().Str("gameId", session.ID).Msg("new session")

	_, err = tea.NewProgram(tui.NewModel(session), tea.WithAltScreen()).Run()
	return err
}

func runWordsImport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(os.Stderr)
	if err != nil {
		return err
	}
	if importDB == "" {
		importDB = cfg.WordsDB
	}
	if importDB == "" {
		return fmt.Errorf("no database: pass --db or set WORDS_DB")
	}
	if importAnswers == "" && importAllowed == "" {
		return fmt.Errorf("nothing to import: pass --answers and/or --allowed")
	}

	ws, err := wordstore.Open(importDB)
	if err != nil {
		return fmt.Errorf("open word store: %w", err)
	}
	defer ws.Close()

	for _, src := range []struct {
		path string
		kind wordstore.Kind
	}{{importAnswers, wordstore.KindAnswer}, {importAllowed, wordstore.KindAllowed}} {
		if src.path == "" {
			continue
		}
		list, err := readList(src.path)
		if err != nil {
			return err
		}
		n, err := ws.Import(cmd.Context(), src.kind, list)
		if err != nil {
			return fmt.Errorf("import %s: %w", src.path, err)
		}
		log.Info().Str("file", src.path).Str("kind", string(src.kind)).Int("added", n).Msg("imported words")
	}
	return nil
}

func readList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return words.ReadWords(f)
}

// loadConfig resolves the configuration and sets up the global logger.
func loadConfig(logOut io.Writer) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	log.Logger = zerolog.New(logOut).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	return cfg, nil
}

// loadLists reads the word lists from the SQLite store when WORDS_DB is set,
// otherwise from WORDS_*_FILE or the embedded defaults.
func loadLists(ctx context.Context, cfg config.Config) (*words.Lists, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.WordsDB == "" {
		return words.Load(cfg.AnswersFile, cfg.AllowedFile)
	}
	ws, err := wordstore.Open(cfg.WordsDB)
	if err != nil {
		return nil, fmt.Errorf("open word store: %w", err)
	}
	defer ws.Close()
	return ws.Load(ctx)
}
