package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
	"github.com/custodia-labs/sercha-complete/internal/logger"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Complete queries read line by line",
	Long: `Reads one query per line and prints its suggestions.

Commands:
  :N  - Select suggestion N of the last query
  :q  - Quit

The configuration file is watched; sources and stages are rebuilt when it changes.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// shellSession holds the state of one shell run.
type shellSession struct {
	mu     sync.Mutex
	out    io.Writer
	styles *Styles

	state       domain.State
	collections []domain.Collection[domain.Suggestion]
}

func (s *shellSession) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

func runShell(cmd *cobra.Command, _ []string) error {
	if currentCompletion() == nil {
		return errCompletionNotConfigured
	}

	ctx, cancel := context.WithCancel(cmd.Context())

	session := &shellSession{
		out:    cmd.OutOrStdout(),
		styles: stylesFor(cmd.OutOrStdout()),
	}

	// Stop the watcher before waiting for it
	var wg sync.WaitGroup
	defer wg.Wait()
	defer cancel()

	servicesMu.RLock()
	watcher, reload := configWatcher, reloadCompletion
	servicesMu.RUnlock()
	if watcher != nil && reload != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := watcher.Watch(ctx, func() {
				svc, err := reload()
				if err != nil {
					logger.Warn("Keeping previous configuration: %v", err)
					session.printf("Configuration error: %v\n", err)
					return
				}
				setCompletion(svc)
				session.printf("Configuration reloaded.\n")
			})
			if err != nil {
				logger.Warn("Config watch stopped: %v", err)
			}
		}()
	}

	interactive := isTerminal(cmd.InOrStdin())
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if interactive {
			session.printf("> ")
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		quit, err := session.handle(ctx, line)
		if err != nil {
			session.printf("Error: %v\n", err)
		}
		if quit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// handle runs one input line and reports whether the shell should exit.
func (s *shellSession) handle(ctx context.Context, line string) (bool, error) {
	svc := currentCompletion()
	if svc == nil {
		return true, errCompletionNotConfigured
	}

	switch {
	case line == ":q" || line == ":quit":
		return true, nil

	case strings.HasPrefix(line, ":"):
		n, err := strconv.Atoi(strings.TrimPrefix(line, ":"))
		if err != nil {
			return false, fmt.Errorf("unknown command %q", line)
		}
		sel, err := svc.Select(ctx, s.collections, n-1, s.state)
		if err != nil {
			return false, err
		}
		s.state.IsOpen = sel.IsOpen
		s.mu.Lock()
		writeSelection(s.out, s.styles, sel)
		s.mu.Unlock()
		return false, nil
	}

	s.state = domain.State{Query: line, IsOpen: true}
	collections, err := svc.Complete(ctx, line, domain.CompleteOptions{State: s.state})
	if err != nil {
		s.collections = nil
		return false, err
	}
	s.collections = collections

	s.mu.Lock()
	writeCollections(s.out, s.styles, collections)
	s.mu.Unlock()
	return false, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
