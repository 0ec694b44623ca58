package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/five82/linkshelf/internal/app"
	"github.com/five82/linkshelf/internal/catalog"
	"github.com/five82/linkshelf/internal/logging"
)

func newListCmd(flags *globalFlags) *cobra.Command {
	var (
		query  string
		sortBy string
		desc   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the filtered and sorted catalog",
		Long: `Print catalog records as a table.

--query matches region names case-insensitively and quadkeys by substring.
--sort accepts region, quadkey, size or updated. Without --sort the order saved
by the interactive view is used.`,
		Example: `  linkshelf list --query oriental --sort size --desc`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Load(flags.options())
			if err != nil {
				return err
			}
			log := logging.NewConsoleLogger(cmd.ErrOrStderr(), flags.verbose)
			log.Debug().Int("records", len(env.Records)).Msg("catalog loaded")

			session := env.NewSession(log)
			if sortBy != "" {
				field, ok := catalog.ParseField(sortBy)
				if !ok {
					return fmt.Errorf("unknown sort field %q (use region, quadkey, size or updated)", sortBy)
				}
				dir := catalog.DirectionAsc
				if desc {
					dir = catalog.DirectionDesc
				}
				session.SetSort(catalog.SortState{Field: field, Direction: dir})
			}
			session.SetQuery(query)

			visible := session.Visible()
			out := cmd.OutOrStdout()
			if len(visible) == 0 {
				fmt.Fprintln(out, "No records match your search")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "REGION\tQUADKEY\tSIZE\tUPDATED\tURL")
			for _, r := range visible {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Region, r.Quadkey, r.Size, r.Updated, r.URL)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d of %d records, ~%s\n", len(visible), len(env.Records), catalog.FormatBytes(catalog.TotalSize(visible)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by region or quadkey")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "Sort column")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")

	return cmd
}
