package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/aCarinato/housewise/internal/classify"
	"github.com/aCarinato/housewise/internal/cli"
	"github.com/aCarinato/housewise/internal/common"
	"github.com/aCarinato/housewise/internal/ingest"
	"github.com/aCarinato/housewise/internal/model"
	"github.com/aCarinato/housewise/internal/report"
	"github.com/aCarinato/housewise/internal/textutil"
)

func analyzeCmd() *cobra.Command {
	var (
		aiTotalsPath string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a renovation quote",
		Long: `Parse a quote document (TXT, CSV, XLSX or PDF), classify every line
item, detect information gaps and print the reconciled per-category totals.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			lines, err := ingest.ParseFile(ctx, args[0])
			if err != nil {
				return common.NewUserError(fmt.Sprintf("could not read quote %s", args[0]), err)
			}

			external, err := loadExternalProposal(aiTotalsPath)
			if err != nil {
				return err
			}

			items := classifyLines(lines)
			summary := report.Summarize(items, external)

			switch outputFormat {
			case "json":
				return renderJSON(summary)
			case "table":
				renderTable(summary)
				return nil
			default:
				return fmt.Errorf("%w: invalid output format %q", common.ErrInvalidConfig, outputFormat)
			}
		},
	}

	cmd.Flags().StringVar(&aiTotalsPath, "ai-totals", "", "JSON file with externally proposed totals and bullets")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "output format (table, json)")

	return cmd
}

// classifyLines runs the classifier over every parsed line with a progress
// bar, preserving input order.
func classifyLines(lines []string) []model.NormalizedItem {
	bar := progressbar.Default(int64(len(lines)), "classifying")

	items := make([]model.NormalizedItem, 0, len(lines))
	for _, line := range lines {
		if item, ok := classify.NormalizeLine(line); ok {
			items = append(items, item)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return items
}

// loadExternalProposal reads the optional AI-proposed totals file. Proposed
// totals for categories outside the ontology are dropped with a warning.
func loadExternalProposal(path string) (*report.ExternalProposal, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewUserError("could not read proposed totals", err)
	}

	var proposal report.ExternalProposal
	if err := json.Unmarshal(data, &proposal); err != nil {
		return nil, common.NewUserError("proposed totals are not valid JSON", err)
	}

	for cat := range proposal.Totals {
		if !cat.IsValid() {
			slog.Warn("Dropping proposed total for unknown category", "category", cat)
			delete(proposal.Totals, cat)
		}
	}

	common.LogDebug("Loaded proposed totals", common.Fields{
		"path":       path,
		"categories": len(proposal.Totals),
	})

	return &proposal, nil
}

func renderJSON(summary report.QuoteSummary) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

func renderTable(summary report.QuoteSummary) {
	fmt.Println(cli.TitleStyle.Render("Quote analysis"))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n",
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Total"))

	for _, cat := range model.AllCategories() {
		total := summary.Totals[cat]
		if total == 0 && cat != model.CategoryUnknown {
			continue
		}
		amount := total
		fmt.Fprintf(w, "%s\t%s\n", cat.DisplayName(), textutil.FormatEuro(&amount))
	}
	_ = w.Flush()

	grand := summary.GrandTotal
	fmt.Printf("\n%s %s\n",
		cli.BoldStyle.Render("Grand total:"),
		cli.SuccessStyle.Render(textutil.FormatEuro(&grand)))

	renderBullets("Included", summary.Inclusions, cli.InfoStyle)
	renderBullets("Excluded or to verify", summary.Exclusions, cli.WarningStyle)
	renderFlagged(summary.Items)
}

func renderBullets(title string, bullets []string, style lipgloss.Style) {
	if len(bullets) == 0 {
		return
	}
	fmt.Printf("\n%s\n", cli.BoldStyle.Render(title+":"))
	for _, b := range bullets {
		fmt.Printf("  • %s\n", style.Render(b))
	}
}

func renderFlagged(items []model.NormalizedItem) {
	var flagged []model.NormalizedItem
	for _, item := range items {
		if len(item.Flags) > 0 {
			flagged = append(flagged, item)
		}
	}
	if len(flagged) == 0 {
		return
	}

	fmt.Printf("\n%s\n", cli.BoldStyle.Render("Flagged items:"))
	for _, item := range flagged {
		fmt.Printf("  %s\n", item.NormalizedText)
		for _, f := range item.Flags {
			fmt.Printf("    %s\n", cli.WarningStyle.Render("⚠ "+string(f)))
		}
	}
}
