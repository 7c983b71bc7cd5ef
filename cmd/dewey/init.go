package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dewey-kb/dewey/internal/config"
	"github.com/dewey-kb/dewey/internal/health"
)

var initKnowledgeDir string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize dewey in a knowledge base",
	Long: `Initialize dewey by creating a .dewey/ directory.

This creates:
  - .dewey/config.json (knowledge directory location)
  - .dewey/health.yaml (trigger thresholds, left alone if present)
  - the knowledge directory and its _proposals/ directory

Example:
  cd ~/notes
  dewey init                        # knowledge lives in docs/
  dewey init --knowledge-dir kb     # knowledge lives in kb/`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := config.WriteConfig(kbRoot, initKnowledgeDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		healthPath := config.HealthPath(kbRoot)
		if _, err := os.Stat(healthPath); errors.Is(err, os.ErrNotExist) {
			if healthPath, err = config.SaveHealthConfig(kbRoot, config.DefaultHealthConfig()); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		knowledge := config.KnowledgePath(kbRoot)
		if err := os.MkdirAll(filepath.Join(knowledge, health.ProposalsDir), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create knowledge directory: %v\n", err)
			os.Exit(1)
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		fmt.Printf("\n%s Initialized dewey\n\n", green("✓"))
		fmt.Printf("  Config: %s\n", cyan(configPath))
		fmt.Printf("  Thresholds: %s\n", cyan(healthPath))
		fmt.Printf("  Knowledge: %s\n", cyan(knowledge))
		fmt.Println()
		fmt.Printf("%s\n", gray("Run 'dewey health report' to audit the knowledge base."))
	},
}

func init() {
	initCmd.Flags().StringVar(&initKnowledgeDir, "knowledge-dir", config.DefaultKnowledgeDir, "Knowledge directory, relative to the root")
	rootCmd.AddCommand(initCmd)
}
