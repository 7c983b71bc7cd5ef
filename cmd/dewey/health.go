package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dewey-kb/dewey/internal/health"
	"github.com/dewey-kb/dewey/internal/history"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Knowledge-base health commands",
	Long: `Run structural checks and review triggers over the knowledge base.

Triggers collect facts and defer judgment to a reviewer:
- Source drift (content not re-validated recently)
- Depth accuracy (length and prose density vs declared depth)
- Source primacy and recommendation coverage (inline citations)
- Why quality and concrete examples (section substance)
- Citation quality and source authority (what the citations point at)
- Provenance completeness (embedded evaluation record)`,
}

var healthCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Run Tier 1 structural validation",
	Long: `Validate areas and documents against the layout conventions.

Exits non-zero when any fail-severity issue is found.

Examples:
  dewey health check
  dewey health check --verbose   # also list passing files`,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")

		report, err := health.RunHealthCheck(context.Background(), kbRoot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		printTier1(os.Stdout, report, verbose)
		if report.Summary.FailCount > 0 {
			os.Exit(1) // Exit with error code when structure is broken
		}
	},
}

var healthTier2Cmd = &cobra.Command{
	Use:   "tier2",
	Short: "Run Tier 2 review triggers",
	Long: `Run every trigger and print the review queue grouped by trigger.

Examples:
  dewey health tier2
  dewey health tier2 --export    # also write .dewey/queue/<id>.json
  dewey health tier2 --trigger source_drift`,
	Run: func(cmd *cobra.Command, args []string) {
		export, _ := cmd.Flags().GetBool("export")
		only, _ := cmd.Flags().GetString("trigger")
		verbose, _ := cmd.Flags().GetBool("verbose")

		auditor, err := health.NewAuditorFromConfig(kbRoot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if only != "" {
			if err := restrictTriggers(auditor, only); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		report, err := auditor.RunTier2Prescreening(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		printTier2(os.Stdout, health.GroupByTrigger(auditor.Registry, report.Queue), report.Summary, verbose)

		if export {
			path, err := auditor.ExportQueue(report)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Printf("%s Exported review queue to %s\n", green("✓"), path)
		}
	},
}

var healthReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run both tiers",
	Long: `Run Tier 1 and Tier 2 and print both reports.

Examples:
  dewey health report
  dewey health report --json       # machine-readable combined report
  dewey health report --snapshot   # append summaries to the history log`,
	Run: func(cmd *cobra.Command, args []string) {
		asJSON, _ := cmd.Flags().GetBool("json")
		snapshot, _ := cmd.Flags().GetBool("snapshot")
		verbose, _ := cmd.Flags().GetBool("verbose")

		auditor, err := health.NewAuditorFromConfig(kbRoot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		report, err := auditor.RunCombinedReport(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if asJSON {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to serialize report: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
		} else {
			printTier1(os.Stdout, report.Tier1, verbose)
			fmt.Println()
			printTier2(os.Stdout, health.GroupByTrigger(auditor.Registry, report.Tier2.Queue), report.Tier2.Summary, verbose)
		}

		if snapshot {
			path, err := history.RecordSnapshot(kbRoot, report.Tier1.Summary, &report.Tier2.Summary)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to record snapshot: %v\n", err)
				os.Exit(1)
			}
			if !asJSON {
				green := color.New(color.FgGreen).SprintFunc()
				fmt.Printf("%s Recorded snapshot in %s\n", green("✓"), path)
			}
		}
	},
}

var healthHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded health snapshots",
	Long: `Show the most recent snapshots, oldest first, and the trend between
the last two.

Examples:
  dewey health history
  dewey health history --limit 30`,
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")

		snapshots, err := history.ReadHistory(kbRoot, limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printHistory(os.Stdout, snapshots)
	},
}

func init() {
	healthCheckCmd.Flags().BoolP("verbose", "v", false, "List passing files too")

	healthTier2Cmd.Flags().Bool("export", false, "Write the queue to .dewey/queue/<id>.json")
	healthTier2Cmd.Flags().StringP("trigger", "t", "", "Run a single trigger ("+strings.Join(health.KnownTriggers, ", ")+")")
	healthTier2Cmd.Flags().BoolP("verbose", "v", false, "Show finding context")

	healthReportCmd.Flags().Bool("json", false, "Print the combined report as JSON")
	healthReportCmd.Flags().Bool("snapshot", false, "Record both summaries in the history log")
	healthReportCmd.Flags().BoolP("verbose", "v", false, "Verbose output")

	healthHistoryCmd.Flags().IntP("limit", "n", history.DefaultLimit, "Number of snapshots to show")

	healthCmd.AddCommand(healthCheckCmd)
	healthCmd.AddCommand(healthTier2Cmd)
	healthCmd.AddCommand(healthReportCmd)
	healthCmd.AddCommand(healthHistoryCmd)
	rootCmd.AddCommand(healthCmd)
}

// restrictTriggers replaces the auditor's registry with one holding only name.
func restrictTriggers(auditor *health.Auditor, name string) error {
	trigger, ok := auditor.Registry.Get(name)
	if !ok {
		return fmt.Errorf("unknown trigger %q. Valid triggers: %s",
			name, strings.Join(auditor.Registry.List(), ", "))
	}
	registry := health.NewTriggerRegistry()
	if err := registry.Register(trigger); err != nil {
		return err
	}
	auditor.Registry = registry
	return nil
}

func printTier1(w io.Writer, report *health.Tier1Report, verbose bool) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintf(w, "%s Tier 1: structural validation\n\n", cyan("⚕"))
	for _, issue := range report.Issues {
		switch issue.Severity {
		case health.SeverityFail:
			fmt.Fprintf(w, "  %s %s: %s\n", red("✗"), issue.File, issue.Message)
		case health.SeverityWarn:
			fmt.Fprintf(w, "  %s %s: %s\n", yellow("!"), issue.File, issue.Message)
		case health.SeverityPass:
			if verbose {
				fmt.Fprintf(w, "  %s %s\n", green("✓"), issue.File)
			}
		}
	}

	s := report.Summary
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "%d file(s): %s fail, %s warn, %s pass\n",
		s.TotalFiles, red(s.FailCount), yellow(s.WarnCount), green(s.PassCount))
}

func printTier2(w io.Writer, groups []health.QueueGroup, summary health.Tier2Summary, verbose bool) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(w, "%s Tier 2: review triggers\n\n", cyan("⚕"))
	for _, group := range groups {
		fmt.Fprintf(w, "%s %s (%d)\n", cyan("▶"), group.Trigger, len(group.Findings))
		if group.Philosophy != "" {
			fmt.Fprintf(w, "  %s\n", gray(group.Philosophy))
		}
		for _, f := range group.Findings {
			fmt.Fprintf(w, "  %s %s: %s\n", yellow("!"), f.File, f.Reason)
			if verbose {
				for _, key := range sortedKeys(f.Context) {
					fmt.Fprintf(w, "      %s: %v\n", key, f.Context[key])
				}
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("─", 60))
	if summary.FilesWithTriggers == 0 {
		fmt.Fprintf(w, "%s %d file(s) scanned, nothing to review\n", green("✓"), summary.TotalFilesScanned)
		return
	}
	fmt.Fprintf(w, "%s %d of %d file(s) flagged for review\n",
		yellow("ⓘ"), summary.FilesWithTriggers, summary.TotalFilesScanned)
}

func printHistory(w io.Writer, snapshots []history.Snapshot) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	if len(snapshots) == 0 {
		fmt.Fprintf(w, "%s\n", gray("No snapshots recorded. Run 'dewey health report --snapshot'."))
		return
	}

	for _, s := range snapshots {
		line := s.Timestamp
		if s.Tier1 != nil {
			line += fmt.Sprintf("  tier1: %d fail, %d warn, %d pass", s.Tier1.FailCount, s.Tier1.WarnCount, s.Tier1.PassCount)
		}
		if s.Tier2 != nil {
			line += fmt.Sprintf("  tier2: %d/%d flagged", s.Tier2.FilesWithTriggers, s.Tier2.TotalFilesScanned)
		} else {
			line += "  tier2: " + gray("not recorded")
		}
		fmt.Fprintln(w, line)
	}

	trend, ok := history.Latest(snapshots)
	if !ok {
		return
	}
	fmt.Fprintln(w, strings.Repeat("─", 60))
	status := green("✓ no regression")
	if trend.Regressed {
		status = red("✗ regressed")
	}
	fmt.Fprintf(w, "%s since %s: fail %+d, warn %+d, flagged files %+d\n",
		status, trend.From, trend.FailDelta, trend.WarnDelta, trend.FilesWithTriggersDelta)
	for _, name := range sortedKeys(trend.TriggerDeltas) {
		fmt.Fprintf(w, "  %s %+d\n", name, trend.TriggerDeltas[name])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
