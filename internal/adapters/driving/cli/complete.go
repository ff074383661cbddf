package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
)

var (
	completeJSON   bool
	completeSelect int
)

var completeCmd = &cobra.Command{
	Use:   "complete [query]",
	Short: "Print suggestions for a query",
	Long: `Resolves the configured sources for the query, runs their items through
the configured pipeline and prints the resulting collections.

Items are numbered across collections in presentation order. Use --select
to pick one: its source decides the input value and URL, and the item is
remembered in history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runComplete,
}

func init() {
	completeCmd.Flags().BoolVar(&completeJSON, "json", false, "output collections as JSON")
	completeCmd.Flags().IntVarP(&completeSelect, "select", "s", 0, "select the Nth suggestion (1-based)")
	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	svc := currentCompletion()
	if svc == nil {
		return errCompletionNotConfigured
	}

	var query string
	if len(args) > 0 {
		query = args[0]
	}
	state := domain.State{Query: query, IsOpen: true}

	collections, err := svc.Complete(cmd.Context(), query, domain.CompleteOptions{State: state})
	if err != nil {
		return fmt.Errorf("completion failed: %w", err)
	}

	if completeSelect > 0 {
		sel, err := svc.Select(cmd.Context(), collections, completeSelect-1, state)
		if err != nil {
			return fmt.Errorf("selection failed: %w", err)
		}
		writeSelection(cmd.OutOrStdout(), stylesFor(cmd.OutOrStdout()), sel)
		return nil
	}

	if completeJSON {
		return writeCollectionsJSON(cmd.OutOrStdout(), collections)
	}

	writeCollections(cmd.OutOrStdout(), stylesFor(cmd.OutOrStdout()), collections)
	return nil
}
