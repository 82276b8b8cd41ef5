package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	qerrors "github.com/conneroisu/quant/internal/errors"
	"github.com/conneroisu/quant/internal/registry"
	"github.com/conneroisu/quant/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:     "watch [CATALOG...]",
	Aliases: []string{"w"},
	Short:   "Reload unit catalogs as they change",
	Long: `Watch unit catalogs and reload them whenever they are written, printing
each unit that is added, updated or removed. Catalogs come from the
arguments, --catalog and catalog.paths in the configuration.

Examples:
  quant watch units.yml
  quant watch -c units.yml -c lab.yml --debounce 1s`,
	RunE: runWatch,
}

var watchDebounce time.Duration

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Wait this long for writes to settle before reloading")
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	paths := append(append([]string{}, a.config.Catalog.Paths...), args...)
	if len(paths) == 0 {
		return qerrors.NewConfigError(qerrors.ErrCodeConfigInvalid, "no catalogs to watch: pass a path or set catalog.paths")
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Arguments not already configured still need an initial load.
	if len(args) > 0 {
		if _, err := a.loader.LoadAll(ctx, args); err != nil {
			a.logger.Warn(ctx, err, "catalogs loaded with errors")
		}
	}

	catalogWatcher, err := watcher.New(watchDebounce, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog watcher: %w", err)
	}
	defer catalogWatcher.Stop()

	for _, path := range paths {
		if err := catalogWatcher.AddCatalog(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}
	catalogWatcher.AddHandler(watcher.ReloadHandler(a.loader, a.logger))

	events := a.units.Watch()
	defer a.units.UnWatch(events)

	if err := catalogWatcher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start catalog watcher: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, path := range catalogWatcher.Catalogs() {
		fmt.Fprintf(out, "watching %s (%d units)\n", path, len(a.units.BySource(path)))
	}

	return printUnitEvents(ctx, out, events)
}

func printUnitEvents(ctx context.Context, out io.Writer, events <-chan registry.UnitEvent) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			fmt.Fprintf(out, "%s %s (%s) from %s\n",
				event.Type, event.Unit.Symbol(), event.Unit.Name(), event.Unit.Source)
		}
	}
}
