package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aCarinato/housewise/internal/classify"
	"github.com/aCarinato/housewise/internal/cli"
	"github.com/aCarinato/housewise/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the work category ontology",
		Long:  `Display every renovation work category with the keywords that match it.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Keywords"))

			for _, cat := range model.WorkCategories() {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					string(cat),
					cat.DisplayName(),
					strings.Join(classify.Keywords(cat), ", "))
			}

			return nil
		},
	}
}
