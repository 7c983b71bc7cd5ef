package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dewey-kb/dewey/internal/curate"
)

var (
	proposeRelevance string
	proposeBy        string
	proposeRationale string
)

var proposeCmd = &cobra.Command{
	Use:   "propose <topic>",
	Short: "Propose a new topic for the knowledge base",
	Long: `Create a proposal document under <knowledge>/_proposals/.

The file name is the topic slug. Proposals are skipped by both health tiers
and an existing proposal is never overwritten.

Example:
  dewey propose "Bid Strategies" --relevance core --rationale "Needed for optimization"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, err := curate.CreateProposal(kbRoot, curate.Proposal{
			Topic:      strings.Join(args, " "),
			Relevance:  proposeRelevance,
			ProposedBy: proposeBy,
			Rationale:  proposeRationale,
		})
		if errors.Is(err, curate.ErrProposalExists) {
			fmt.Fprintf(os.Stderr, "Error: %v (edit the existing file instead)\n", err)
			os.Exit(1)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Printf("\n%s Created proposal %s\n\n", green("✓"), cyan(path))
	},
}

func defaultProposer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}

func init() {
	proposeCmd.Flags().StringVar(&proposeRelevance, "relevance", "supporting", "Relevance of the topic (core, supporting, peripheral)")
	proposeCmd.Flags().StringVar(&proposeBy, "by", defaultProposer(), "Who is proposing the topic")
	proposeCmd.Flags().StringVar(&proposeRationale, "rationale", "", "Why the topic belongs in the knowledge base")
	rootCmd.AddCommand(proposeCmd)
}
