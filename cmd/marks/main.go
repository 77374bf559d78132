package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/marks/internal/config"
	"github.com/nikbrunner/marks/internal/culler"
	"github.com/nikbrunner/marks/internal/exporter"
	"github.com/nikbrunner/marks/internal/importer"
	"github.com/nikbrunner/marks/internal/logger"
	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/picker"
	"github.com/nikbrunner/marks/internal/search"
	"github.com/nikbrunner/marks/internal/storage"
	"github.com/nikbrunner/marks/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// cli carries what every command needs once the config is loaded.
type cli struct {
	configPath string
	cfg        *config.Config
	log        logger.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:          "marks",
		Short:        "Terminal bookmark manager",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI()
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/marks/config.yaml)")

	root.AddCommand(
		c.addCmd(),
		c.findCmd(),
		c.importCmd(),
		c.exportCmd(),
		c.checkCmd(),
	)
	return root
}

func (c *cli) setup() error {
	path := c.configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("config path: %w", err)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.cfg = cfg

	log, err := logger.New(logger.Options{
		Level:      cfg.LogLevel,
		Pretty:     cfg.PrettyLog,
		OutputPath: cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	c.log = log
	return nil
}

// withStore opens the configured storage, loads the collection and hands
// both to fn.
func (c *cli) withStore(fn func(storage.Storage, *model.Store) error) error {
	s, err := storage.Open(c.cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer storage.Close(s)

	store, err := s.Load()
	if err != nil {
		return fmt.Errorf("load bookmarks: %w", err)
	}
	return fn(s, store)
}

// runTUI runs the full interactive TUI. The app saves after every add.
func (c *cli) runTUI() error {
	return c.withStore(func(s storage.Storage, store *model.Store) error {
		app := tui.NewApp(tui.AppParams{
			Store:         store,
			Storage:       s,
			Logger:        c.log,
			IsMac:         c.cfg.IsMac(),
			ToastDuration: c.cfg.ToastDuration,
		})

		c.log.Info("starting tui", logger.Int("bookmarks", len(store.Bookmarks)))
		if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("run app: %w", err)
		}
		return nil
	})
}

func (c *cli) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <url> <name> <category>",
		Short: "Add a bookmark without opening the TUI",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := model.NewBookmark(model.NewBookmarkParams{
				URL:      args[0],
				Name:     args[1],
				Category: args[2],
			})
			if err != nil {
				c.log.Error("bookmark validation failed", logger.Error(err))
				return err
			}

			return c.withStore(func(s storage.Storage, store *model.Store) error {
				store.Bookmarks = append(store.Bookmarks, b)
				if err := s.Save(store); err != nil {
					return fmt.Errorf("save bookmarks: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", b.Name, b.Category)
				return nil
			})
		},
	}
}

func (c *cli) findCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy search, pick and open a bookmark",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			return c.withStore(func(_ storage.Storage, store *model.Store) error {
				out := cmd.OutOrStdout()

				results := search.FuzzySearch(store.Bookmarks, query)
				if len(results) == 0 {
					fmt.Fprintf(out, "No bookmarks found for '%s'\n", query)
					return nil
				}

				selected := results[0].Bookmark
				if len(results) > 1 {
					final, err := tea.NewProgram(picker.New(results, query)).Run()
					if err != nil {
						return fmt.Errorf("run picker: %w", err)
					}
					b, ok := final.(picker.Picker).SelectedBookmark()
					if !ok {
						return nil
					}
					selected = b
				}

				if printOnly {
					fmt.Fprintln(out, selected.URL)
					return nil
				}
				fmt.Fprintf(out, "Opening: %s\n", selected.Name)
				return openURL(selected.URL)
			})
		},
	}
	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "print the URL instead of opening it")
	return cmd
}

func (c *cli) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.html>",
		Short: "Import bookmarks from a browser HTML export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer file.Close()

			result, err := importer.ParseHTMLBookmarks(file, c.cfg.ImportCategory)
			if err != nil {
				return fmt.Errorf("parse HTML: %w", err)
			}

			return c.withStore(func(s storage.Storage, store *model.Store) error {
				added, skipped := store.ImportMerge(result.Bookmarks)
				if err := s.Save(store); err != nil {
					return fmt.Errorf("save bookmarks: %w", err)
				}

				c.log.Info("import finished",
					logger.String("file", args[0]),
					logger.Int("added", added),
					logger.Int("skipped", skipped),
					logger.Int("rejected", result.Rejected),
				)

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Imported %d bookmarks", added)
				if skipped > 0 {
					fmt.Fprintf(out, " (%d duplicates skipped)", skipped)
				}
				if result.Rejected > 0 {
					fmt.Fprintf(out, " (%d invalid links rejected)", result.Rejected)
				}
				fmt.Fprintln(out)
				return nil
			})
		},
	}
}

func (c *cli) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export bookmarks to browser HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath := ""
			if len(args) == 1 {
				outputPath = args[0]
			} else {
				var err error
				outputPath, err = exporter.DefaultExportPath()
				if err != nil {
					return fmt.Errorf("export path: %w", err)
				}
			}

			return c.withStore(func(_ storage.Storage, store *model.Store) error {
				if err := exporter.WriteFile(outputPath, store); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bookmarks in %d categories to %s\n",
					len(store.Bookmarks), len(store.Categories()), outputPath)
				return nil
			})
		},
	}
}

func (c *cli) checkCmd() *cobra.Command {
	var (
		concurrency int
		timeout     time.Duration
		exclude     []string
		removeDead  bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Find bookmarks whose links are dead",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return c.withStore(func(s storage.Storage, store *model.Store) error {
				return c.check(ctx, cmd, s, store, culler.Options{
					Concurrency:    concurrency,
					Timeout:        timeout,
					ExcludeDomains: exclude,
				}, removeDead)
			})
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 10, "parallel requests")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "timeout per request")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "domains where 404 may mean private")
	cmd.Flags().BoolVar(&removeDead, "remove-dead", false, "delete dead bookmarks and save")
	return cmd
}

func (c *cli) check(ctx context.Context, cmd *cobra.Command, s storage.Storage, store *model.Store, opts culler.Options, removeDead bool) error {
	out := cmd.OutOrStdout()

	started := time.Now()
	results := culler.CheckURLs(ctx, store.Bookmarks, opts)
	dead := culler.DeadResults(results)

	unreachable := 0
	for _, r := range results {
		if r.Status == culler.Unreachable {
			unreachable++
			fmt.Fprintf(out, "? %s (%s): %s\n", r.Bookmark.Name, r.Bookmark.URL, r.Error)
		}
	}
	for _, r := range dead {
		fmt.Fprintf(out, "✗ %s (%s): %d\n", r.Bookmark.Name, r.Bookmark.URL, r.StatusCode)
	}

	c.log.Info("link check finished",
		logger.Int("checked", len(results)),
		logger.Int("dead", len(dead)),
		logger.Int("unreachable", unreachable),
		logger.Bool("remove_dead", removeDead),
		logger.Duration("took", time.Since(started)),
	)
	fmt.Fprintf(out, "Checked %d bookmarks: %d dead, %d unreachable\n", len(results), len(dead), unreachable)

	if !removeDead || len(dead) == 0 {
		return nil
	}
	store.Bookmarks = culler.RemoveDead(store.Bookmarks, results)
	if err := s.Save(store); err != nil {
		return fmt.Errorf("save bookmarks: %w", err)
	}
	fmt.Fprintf(out, "Removed %d dead bookmarks\n", len(dead))
	return nil
}

// openURL opens a URL in the default browser.
func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
