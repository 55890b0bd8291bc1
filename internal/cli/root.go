package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/roach88/cwlink/internal/logging"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json"
	Config  string // profile path, optional
	History string // history database path, optional

	logger zerolog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the cwlink CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cwlink",
		Short: "cwlink - CloudWatch Metrics console URL generator",
		Long:  "Generates CloudWatch Metrics console URLs for EC2, EBS and EFS graphs without calling the AWS API.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			level := "warn"
			if opts.Verbose {
				level = "debug"
			}
			opts.logger = logging.New(logging.Config{
				Level:  level,
				Pretty: true,
				Output: cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "profile file with defaults and custom families")
	cmd.PersistentFlags().StringVar(&opts.History, "history", "", "SQLite database recording generated URLs")

	// Add subcommands
	cmd.AddCommand(NewEC2Command(opts))
	cmd.AddCommand(NewEBSCommand(opts))
	cmd.AddCommand(NewEFSCommand(opts))
	cmd.AddCommand(NewCustomCommand(opts))
	cmd.AddCommand(NewFamiliesCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
