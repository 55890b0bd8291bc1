package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cwlink/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "history",
		Short:         "List recently generated URLs",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			if opts.History == "" {
				return fail(formatter, ErrCodeHistory, ExitCommandError,
					errors.New("--history is required"))
			}
			st, err := store.Open(opts.History)
			if err != nil {
				return fail(formatter, ErrCodeHistory, ExitCommandError, err)
			}
			defer st.Close()

			entries, err := st.List(cmd.Context(), opts.Limit)
			if err != nil {
				return fail(formatter, ErrCodeHistory, ExitCommandError, err)
			}

			if opts.Format == "json" {
				return formatter.Success(entries)
			}
			w := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(w, "%s  %s/%s  %s  %s\n", e.CreatedAt, e.Service, e.Metric, e.Region, e.URL)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum entries to list (0 = all)")
	return cmd
}
