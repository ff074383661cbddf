package cli

import (
	"github.com/spf13/cobra"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the configured pipeline stages",
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc := currentCompletion()
		if svc == nil {
			return errCompletionNotConfigured
		}

		stages := svc.Stages()
		if len(stages) == 0 {
			cmd.Println("No stages configured.")
			return nil
		}
		for i, name := range stages {
			cmd.Printf("  %d. %s\n", i+1, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stagesCmd)
}
