package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aCarinato/housewise/internal/classify"
	"github.com/aCarinato/housewise/internal/cli"
	"github.com/aCarinato/housewise/internal/textutil"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [line]",
		Short: "Classify a single quote line",
		Long: `Classify one quote line given as arguments, or one line per row from
stdin when no arguments are given. Useful for inspecting how the keyword
scorer treats a specific phrasing.`,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				printClassification(strings.Join(args, " "))
				return nil
			}

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				printClassification(scanner.Text())
			}
			return scanner.Err()
		},
	}
}

func printClassification(line string) {
	item, ok := classify.NormalizeLine(line)
	if !ok {
		fmt.Println(cli.SubtleStyle.Render("(skipped: line too short)"))
		return
	}

	match := classify.FindLikelyCategory(line)

	fmt.Printf("%s %s\n", cli.BoldStyle.Render("category:"), item.Category.DisplayName())
	fmt.Printf("%s %d\n", cli.BoldStyle.Render("keyword hits:"), match.Hits)
	fmt.Printf("%s %s\n", cli.BoldStyle.Render("amount:"), textutil.FormatEuro(item.AmountEUR))
	fmt.Printf("%s %.2f\n", cli.BoldStyle.Render("confidence:"), item.Confidence)
	for _, f := range item.Flags {
		fmt.Printf("  %s\n", cli.WarningStyle.Render("⚠ "+string(f)))
	}
}
