package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/reflow"
	"github.com/tsawler/reflow/hocr"
	"github.com/tsawler/reflow/layout"
)

func extractCmd() *cobra.Command {
	var maxPages int
	var parallel int
	var noMarkers bool
	var singleColumn bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "extract <file.hocr>",
		Short: "Reconstruct a document's text in reading order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := hocr.Open(args[0])
			if err != nil {
				return err
			}

			cfg := layout.DefaultConfig()
			cfg.ForceSingleColumn = singleColumn

			rec := reflow.From(doc.Source()).
				MaxPages(maxPages).
				Parallel(parallel).
				WithConfig(cfg).
				PageMarkers(!noMarkers)

			text, warnings, err := rec.Text(cmd.Context())
			if err != nil {
				return err
			}

			if len(warnings) > 0 && !quiet {
				fmt.Fprintln(cmd.ErrOrStderr(), reflow.FormatWarnings(warnings))
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxPages, "max-pages", reflow.DefaultMaxPages, "maximum number of pages to process")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "number of pages to process concurrently")
	cmd.Flags().BoolVar(&noMarkers, "no-markers", false, "omit the --- Page N --- separator lines")
	cmd.Flags().BoolVar(&singleColumn, "single-column", false, "skip column detection and linearize each page as one column")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress warnings on stderr")

	return cmd
}
