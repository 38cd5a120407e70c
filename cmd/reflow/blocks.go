package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/reflow"
	"github.com/tsawler/reflow/hocr"
	"github.com/tsawler/reflow/model"
)

// blockJSON is the wire shape for one classified block. Figure
// placeholders cover no lines: firstLine is the boundary they mark and
// lineCount is 0.
type blockJSON struct {
	Page      int    `json:"page"`
	Type      string `json:"type"`
	Text      string `json:"text"`
	FirstLine int    `json:"firstLine"`
	LineCount int    `json:"lineCount"`
}

func blocksCmd() *cobra.Command {
	var maxPages int
	var parallel int
	var only string

	cmd := &cobra.Command{
		Use:   "blocks <file.hocr>",
		Short: "Emit classified blocks as JSON, one object per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := hocr.Open(args[0])
			if err != nil {
				return err
			}

			pages, warnings, err := reflow.From(doc.Source()).
				MaxPages(maxPages).
				Parallel(parallel).
				Pages(cmd.Context())
			if err != nil {
				return err
			}

			if len(warnings) > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), reflow.FormatWarnings(warnings))
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, page := range pages {
				for _, block := range page.Blocks {
					if only != "" && block.Type.String() != only {
						continue
					}
					out := blockJSON{
						Page:      page.Number,
						Type:      block.Type.String(),
						Text:      block.Text,
						FirstLine: block.SourceLines.Start,
						LineCount: block.SourceLines.Len(),
					}
					if err := enc.Encode(out); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxPages, "max-pages", reflow.DefaultMaxPages, "maximum number of pages to process")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "number of pages to process concurrently")
	cmd.Flags().StringVar(&only, "type", "", fmt.Sprintf("emit only blocks of this type (e.g. %q, %q)",
		model.Heading.String(), model.TableRow.String()))

	return cmd
}
