package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
)

var (
	historyLimit    int
	historyJSON     bool
	historyURL      string
	historyCategory string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage remembered selections",
	Long: `Selections made with 'complete --select' or in the shell are remembered
and served by sources of type "history".`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List remembered selections, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyAddCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Remember a suggestion",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryAdd,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all remembered selections",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

var errHistoryNotConfigured = errors.New("history service not configured")

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "output entries as JSON")
	historyAddCmd.Flags().StringVar(&historyURL, "url", "", "URL of the suggestion")
	historyAddCmd.Flags().StringVar(&historyCategory, "category", "", "category of the suggestion")

	historyCmd.AddCommand(historyListCmd, historyAddCmd, historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	svc := currentHistory()
	if svc == nil {
		return errHistoryNotConfigured
	}

	entries, err := svc.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		cmd.Println("History is empty.")
		return nil
	}
	for i, e := range entries {
		cmd.Printf("  [%d] %s", i+1, e.Label)
		if !e.CreatedAt.IsZero() {
			cmd.Printf("  (%s)", e.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
		cmd.Println()
	}
	return nil
}

func runHistoryAdd(cmd *cobra.Command, args []string) error {
	svc := currentHistory()
	if svc == nil {
		return errHistoryNotConfigured
	}

	err := svc.Add(cmd.Context(), domain.Suggestion{
		Label:    args[0],
		URL:      historyURL,
		Category: historyCategory,
	})
	if err != nil {
		return fmt.Errorf("failed to add history entry: %w", err)
	}

	cmd.Printf("Remembered %q\n", args[0])
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	svc := currentHistory()
	if svc == nil {
		return errHistoryNotConfigured
	}

	if err := svc.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}
