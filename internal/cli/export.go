package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/five82/linkshelf/internal/app"
	"github.com/five82/linkshelf/internal/archive"
	"github.com/five82/linkshelf/internal/catalog"
	"github.com/five82/linkshelf/internal/logging"
	"github.com/five82/linkshelf/internal/state"
)

func newExportCmd(flags *globalFlags) *cobra.Command {
	var (
		query string
		ids   []string
		dest  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Bundle matching catalog links into a ZIP archive",
		Long: `Export writes one text file per matching record into
<archive_prefix>_<YYYY-MM-DD>.zip.

Records are chosen by --query, then narrowed to --ids when given. The archive
goes to --dest, or export_dir from the config. A destination of the form
s3://bucket/prefix uploads the archive instead of writing it locally.`,
		Example: `  linkshelf export --query Oriental
  linkshelf export --ids 031133,031132 --dest s3://footprints/exports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Load(flags.options())
			if err != nil {
				return err
			}

			log, err := logging.NewTeeLogger(env.Config.LogPath, cmd.ErrOrStderr(), flags.verbose)
			if err != nil {
				return fmt.Errorf("open log: %w", err)
			}
			defer func() { _ = log.Close() }()

			session := env.NewSession(log)
			session.SetQuery(query)
			records := pickIDs(session.Visible(), ids)
			if len(records) == 0 {
				return fmt.Errorf("no records to export: %w", state.ErrEmptySelection)
			}

			target := env.Config.ExportDir
			if strings.TrimSpace(dest) != "" {
				target = dest
			}
			saver, err := archive.NewSaver(cmd.Context(), target, env.Config.S3Region)
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(records),
				progressbar.OptionSetDescription("exporting"),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetRenderBlankState(true),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprint(cmd.ErrOrStderr(), "\n")
				}),
			)

			saved, err := session.Export(cmd.Context(), state.ExportJob{
				Records:  records,
				Exporter: archive.NewExporter(env.Config.ArchiveFolder),
				Saver:    saver,
				Prefix:   env.Config.ArchivePrefix,
				Now:      time.Now(),
				OnProgress: func(processed, total, skipped int) {
					_ = bar.Set(processed)
				},
			})
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), saved)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by region or quadkey")
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "Comma-separated quadkeys to export")
	cmd.Flags().StringVarP(&dest, "dest", "d", "", "Destination directory or s3://bucket/prefix")

	return cmd
}

// pickIDs keeps the records whose quadkey is in ids, in view order. An empty
// ids list keeps everything.
func pickIDs(records []catalog.Record, ids []string) []catalog.Record {
	if len(ids) == 0 {
		return records
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			want[id] = true
		}
	}
	var out []catalog.Record
	for _, r := range records {
		if want[r.Quadkey] {
			out = append(out, r)
		}
	}
	return out
}
