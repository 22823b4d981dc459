package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for skilllint
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skilllint",
		Short: "Voice and style checker for skill documentation",
		Long: `Skilllint scans a corpus of skill documents (markdown) and enforces
two style contracts: imperative voice (no second-person, passive, hedged,
or conversational phrasing) and the paired correct/incorrect example
convention.

Lines inside code fences, front matter, blockquotes, and tables are
exempt; inline code spans are masked. Results render as text, JSON,
markdown, or HTML, with exit-code semantics for CI gating.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
