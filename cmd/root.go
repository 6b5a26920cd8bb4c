package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"claude-explorer/cmd/config"
	"claude-explorer/pkg/extract"
	"claude-explorer/pkg/report"
)

const version = "1.0.0"

// NewRootCmd builds the claude-explorer command. The bare command
// extracts everything from the Claude directory and writes the HTML
// report; --json emits the raw composite document instead.
func NewRootCmd() *cobra.Command {
	var (
		noOpen  bool
		jsonOut bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:     "claude-explorer",
		Short:   "Browse your ~/.claude data as an interactive HTML report",
		Version: version,
		Long: `claude-explorer reads the local Claude Code data directory and renders
session transcripts, prompt history, plans, skills, todos and settings
into a single self-contained HTML report.

Examples:
  claude-explorer                           # Generate and open the report
  claude-explorer --no-open                 # Generate without opening a browser
  claude-explorer -o ~/Desktop/claude.html  # Custom output location
  claude-explorer --max-sessions 50         # Keep more sessions per project
  claude-explorer --json                    # Print the raw JSON document`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := config.NewLogger(verbose)
			opts := extract.DefaultOptions()
			opts.MaxSessions = viper.GetInt("max_sessions")
			opts.MaxMessages = viper.GetInt("max_messages")

			extractor := extract.New(viper.GetString("claude_dir"), opts, logger)
			logger.Debugf("reading from: %s", extractor.Root())

			doc, err := extractor.Extract()
			if err != nil {
				return err
			}
			logger.Debugf("found %d history entries, %d projects, %d plans, %d skills, %d todo lists",
				len(doc.History), len(doc.Projects), len(doc.Plans), len(doc.Skills), len(doc.Todos))

			if jsonOut {
				data, err := report.EncodeIndent(doc)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			output := viper.GetString("output")
			size, err := report.Write(doc, output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated: %s (%s)\n", output, humanize.Bytes(uint64(size)))

			if !noOpen {
				if err := report.Open(output); err != nil {
					logger.Warnf("could not open browser: %v", err)
				}
			}
			return nil
		},
	}

	cobra.OnInitialize(config.InitConfig)

	cmd.Flags().StringP("claude-dir", "d", "", "Path to Claude directory (default ~/.claude)")
	cmd.Flags().StringP("output", "o", "", "Output HTML file path (default ~/claude-explorer.html)")
	cmd.Flags().Int("max-sessions", 20, "Maximum sessions per project")
	cmd.Flags().Int("max-messages", 500, "Maximum messages per session")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Do not open the browser after generating")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output raw JSON data instead of HTML")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed progress")

	_ = viper.BindPFlag("claude_dir", cmd.Flags().Lookup("claude-dir"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("max_sessions", cmd.Flags().Lookup("max-sessions"))
	_ = viper.BindPFlag("max_messages", cmd.Flags().Lookup("max-messages"))

	cmd.AddCommand(NewDoctorCmd(&verbose))

	return cmd
}
