package main

import (
	"os"

	"github.com/spf13/cobra"
)

// kbRoot is the knowledge-base root shared by every command.
var kbRoot string

var rootCmd = &cobra.Command{
	Use:   "dewey",
	Short: "Audit a markdown knowledge base",
	Long: `Dewey audits a tree of markdown knowledge documents in two tiers.

Tier 1 validates structure (frontmatter fields, required sections, file
layout) and grades each result fail, warn or pass.

Tier 2 runs deterministic triggers that flag documents for semantic review
and attach the facts a reviewer needs. Triggers never judge quality.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&kbRoot, "root", "C", ".", "Knowledge-base root (the directory holding .dewey/)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
