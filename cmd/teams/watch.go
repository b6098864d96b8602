package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	appteams "github.com/preston-bernstein/afl-teams-service/internal/app/teams"
	domainteams "github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
	"github.com/preston-bernstein/afl-teams-service/internal/presenter"
	"github.com/preston-bernstein/afl-teams-service/internal/store"
)

const watchHelp = `commands: sort <a-z|z-a> | filter <-|pre-1980|post-1980> | quit`

func newWatchCmd(build func() app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Interactively change sort and filter; each change reloads",
		Long:  "Reads one command per line from stdin.\n" + watchHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := build()
			w := newWatcher(a, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return w.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// watcher feeds stdin commands into a Session. Interactions run in the background
// so a new command can supersede one still loading.
type watcher struct {
	session   *appteams.Session
	views     *store.ViewStore
	imageBase string
	out       io.Writer
	errOut    io.Writer

	outMu sync.Mutex
	wg    sync.WaitGroup
}

func newWatcher(a app, out, errOut io.Writer) *watcher {
	views := store.NewViewStore()
	return &watcher{
		session:   appteams.NewSession(a.service, views, a.logger, nil),
		views:     views,
		imageBase: a.cfg.Squiggle.ImageBaseURL,
		out:       out,
		errOut:    errOut,
	}
}

func (w *watcher) run(ctx context.Context, in io.Reader) error {
	defer w.session.Close()

	w.printErr(watchHelp)
	w.start(ctx, appteams.DefaultSelection())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		sel, quit, err := w.parse(scanner.Text())
		if quit {
			break
		}
		if err != nil {
			w.printErr(err.Error())
			continue
		}
		if sel != nil {
			w.start(ctx, *sel)
		}
	}
	w.wg.Wait()
	return scanner.Err()
}

func (w *watcher) parse(line string) (*appteams.Selection, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false, nil
	}
	current := w.session.Selection()
	switch {
	case fields[0] == "quit" || fields[0] == "exit":
		return nil, true, nil
	case fields[0] == "sort" && len(fields) == 2:
		dir, err := domainteams.ParseDirection(fields[1])
		if err != nil {
			return nil, false, err
		}
		next := current.WithDirection(dir)
		return &next, false, nil
	case fields[0] == "filter" && len(fields) == 2:
		pred, err := domainteams.ParsePredicate(fields[1])
		if err != nil {
			return nil, false, err
		}
		next := current.WithPredicate(pred)
		return &next, false, nil
	default:
		return nil, false, fmt.Errorf("unknown command %q; %s", line, watchHelp)
	}
}

func (w *watcher) start(ctx context.Context, sel appteams.Selection) {
	done := w.session.Start(ctx, sel)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		res := <-done
		switch {
		case errors.Is(res.Err, appteams.ErrSuperseded):
			return
		case res.Err != nil:
			w.outMu.Lock()
			_ = presenter.RenderError(w.errOut, res.Err)
			w.outMu.Unlock()
			return
		}
		w.render(res.View)
	}()
}

func (w *watcher) render(view store.View) {
	w.outMu.Lock()
	defer w.outMu.Unlock()
	// a newer view may have been published while we waited for the lock
	if view.Token != w.views.Token() {
		return
	}
	fmt.Fprintf(w.out, "== sort=%s filter=%s (%d teams)\n", view.Sort, view.Filter, len(view.Teams))
	_ = presenter.RenderText(w.out, presenter.Cards(w.imageBase, view.Teams))
}

func (w *watcher) printErr(msg string) {
	w.outMu.Lock()
	defer w.outMu.Unlock()
	fmt.Fprintln(w.errOut, msg)
}
