package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"claude-explorer/cmd/config"
	"claude-explorer/pkg/extract"
)

// NewDoctorCmd reports what the Claude directory contains without
// writing anything: per-category counts plus every warning hit while
// reading. Useful to see what a generated report would include.
func NewDoctorCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Inspect the Claude directory and report what was found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := config.NewLogger(*verbose)
			extractor := extract.New(viper.GetString("claude_dir"), extract.DefaultOptions(), logger)

			doc, err := extractor.Extract()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Checking %s\n\n", extractor.Root())

			var sessions int
			var transcriptBytes int64
			for _, p := range doc.Projects {
				sessions += p.SessionCount
				for _, s := range p.Sessions {
					transcriptBytes += s.Size
				}
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tCOUNT\tDETAIL")
			fmt.Fprintf(w, "history\t%d\tentries\n", len(doc.History))
			fmt.Fprintf(w, "projects\t%d\t%d sessions, %s of transcripts\n",
				len(doc.Projects), sessions, humanize.Bytes(uint64(transcriptBytes)))
			fmt.Fprintf(w, "plans\t%d\tfiles\n", len(doc.Plans))
			fmt.Fprintf(w, "skills\t%d\tdirectories\n", len(doc.Skills))
			fmt.Fprintf(w, "todos\t%d\tnon-empty lists\n", len(doc.Todos))
			fmt.Fprintf(w, "file-history\t%d\tsessions\n", len(doc.FileHistory))
			w.Flush()

			if warnings := extractor.Warnings(); len(warnings) > 0 {
				fmt.Fprintf(out, "\n%d warning(s):\n", len(warnings))
				for _, warning := range warnings {
					fmt.Fprintf(out, "  - %s\n", warning)
				}
			} else {
				fmt.Fprintln(out, "\nNo problems found.")
			}
			return nil
		},
	}
}
