package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/revet-dev/revet/internal/config"
)

var flagSetupPath string

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Write an example .env configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteExampleEnv(flagSetupPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitError
			return nil
		}
		fmt.Fprintf(os.Stdout, "Wrote %s — fill in your tokens and rename it to .env\n", flagSetupPath)
		return nil
	},
}

func init() {
	setupCmd.Flags().StringVar(&flagSetupPath, "out", ".env.example", "Path for the example file")
}
