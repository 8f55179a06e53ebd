// Package cli defines the Cobra commands of the bizgenius binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev" // set via ldflags at build time

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bizgenius",
		Short: "Multi-provider LLM business plan generator",
		Long: `BizGenius turns a business idea into a twelve-section business plan,
generating each section with the first LLM provider that answers and
recording the cost of every call.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCostCmd())
	return root
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
