// Package cli provides the command-line interface of sercha-complete.
package cli

import (
	"errors"
	"sync"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-complete/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-complete/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-complete/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services holds the services the commands run against.
type Services struct {
	Completion driving.CompletionService
	History    driving.HistoryService

	// Watcher reports configuration changes to the shell. Optional.
	Watcher driven.ConfigWatcher

	// Reload rebuilds the completion service from the current configuration. Optional.
	Reload func() (driving.CompletionService, error)

	// Close releases resources held by the services. Optional.
	Close func() error
}

// BootstrapFunc builds the services for the given config file path.
// An empty path selects the default location.
type BootstrapFunc func(configPath string) (*Services, error)

var (
	verbose    bool
	configPath string

	bootstrap BootstrapFunc

	servicesMu        sync.RWMutex
	completionService driving.CompletionService
	historyService    driving.HistoryService
	configWatcher     driven.ConfigWatcher
	reloadCompletion  func() (driving.CompletionService, error)
	closeServices     func() error
)

var rootCmd = &cobra.Command{
	Use:   "sercha-complete",
	Short: "Autocomplete suggestions from configurable sources",
	Long: `sercha-complete resolves completion suggestions from the sources listed
in its configuration file and reshapes them through a pipeline of stages
(group_by, limit, balance) before printing them.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to the configuration file (default ~/.sercha/complete.toml)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetBootstrap sets the function used to build services before a command runs.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices installs services directly, bypassing the bootstrap function.
func SetServices(s *Services) {
	servicesMu.Lock()
	defer servicesMu.Unlock()

	if s == nil {
		completionService = nil
		historyService = nil
		configWatcher = nil
		reloadCompletion = nil
		closeServices = nil
		return
	}
	completionService = s.Completion
	historyService = s.History
	configWatcher = s.Watcher
	reloadCompletion = s.Reload
	closeServices = s.Close
}

// Execute runs the root command and releases the services afterwards,
// whether or not the command succeeded.
func Execute() (err error) {
	defer func() {
		if cerr := teardownServices(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return rootCmd.Execute()
}

func setupServices(cmd *cobra.Command, _ []string) error {
	if verbose {
		logger.SetVerbose(true)
	}

	if cmd == versionCmd || bootstrap == nil || currentCompletion() != nil {
		return nil
	}

	services, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}

// teardownServices runs the close function at most once per install.
func teardownServices() error {
	servicesMu.Lock()
	closeFn := closeServices
	closeServices = nil
	servicesMu.Unlock()

	if closeFn == nil {
		return nil
	}
	return closeFn()
}

// currentCompletion returns the completion service in use.
// The shell swaps it when the configuration changes.
func currentCompletion() driving.CompletionService {
	servicesMu.RLock()
	defer servicesMu.RUnlock()
	return completionService
}

func currentHistory() driving.HistoryService {
	servicesMu.RLock()
	defer servicesMu.RUnlock()
	return historyService
}

func setCompletion(s driving.CompletionService) {
	servicesMu.Lock()
	defer servicesMu.Unlock()
	completionService = s
}

var errCompletionNotConfigured = errors.New("completion service not configured")
