package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cwlink/internal/config"
	"github.com/roach88/cwlink/internal/metrics"
)

// FamilyInfo is one row of the families listing.
type FamilyInfo struct {
	Service string `json:"service"`
	Metric  string `json:"metric"`
	Stat    string `json:"stat"`
}

// NewFamiliesCommand creates the families command.
func NewFamiliesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "families",
		Short:         "List supported service/metric combinations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			var infos []FamilyInfo
			for _, f := range metrics.Families() {
				infos = append(infos, FamilyInfo{Service: f.Service, Metric: f.Metric, Stat: f.Stat})
			}
			if rootOpts.Config != "" {
				profile, err := config.Load(rootOpts.Config)
				if err != nil {
					return fail(formatter, ErrCodeConfig, ExitCommandError, err)
				}
				for _, f := range profile.Families {
					infos = append(infos, FamilyInfo{Service: "custom", Metric: f.Name, Stat: f.Stat})
				}
			}

			if rootOpts.Format == "json" {
				return formatter.Success(infos)
			}
			w := cmd.OutOrStdout()
			for _, info := range infos {
				fmt.Fprintf(w, "%-8s %-12s %s\n", info.Service, info.Metric, info.Stat)
			}
			return nil
		},
	}
}
