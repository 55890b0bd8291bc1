package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/cwlink/internal/config"
	"github.com/roach88/cwlink/internal/graph"
	"github.com/roach88/cwlink/internal/metrics"
	"github.com/roach88/cwlink/internal/store"
)

const defaultPeriod = "300"

// GenerateOptions holds flags shared by the URL-producing commands.
type GenerateOptions struct {
	*RootOptions
	Metric string
	Region string
	From   string
	To     string
	IDs    string
	Period string
}

// NewEC2Command creates the ec2 command.
func NewEC2Command(rootOpts *RootOptions) *cobra.Command {
	return newServiceCommand(rootOpts, "ec2",
		"Generate a CloudWatch URL for EC2 instance metrics",
		[]string{"network", "packets", "cpu", "statuscheck"})
}

// NewEBSCommand creates the ebs command.
func NewEBSCommand(rootOpts *RootOptions) *cobra.Command {
	return newServiceCommand(rootOpts, "ebs",
		"Generate a CloudWatch URL for EBS volume metrics",
		[]string{"iops", "mibs", "latency"})
}

// NewEFSCommand creates the efs command.
func NewEFSCommand(rootOpts *RootOptions) *cobra.Command {
	return newServiceCommand(rootOpts, "efs",
		"Generate a CloudWatch URL for EFS filesystem metrics",
		[]string{"iops", "mibs"})
}

// NewCustomCommand creates the command running a profile-defined family.
func NewCustomCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "custom <family>",
		Short:         "Generate a URL for a profile-defined metric family",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd, "custom", args[0])
		},
	}
	addGenerateFlags(cmd, opts)
	return cmd
}

func newServiceCommand(rootOpts *RootOptions, service, short string, choices []string) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           service,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd, service, opts.Metric)
		},
	}
	cmd.Flags().StringVar(&opts.Metric, "metric", "",
		fmt.Sprintf("metric family (%s)", strings.Join(choices, "|")))
	cmd.MarkFlagRequired("metric")
	addGenerateFlags(cmd, opts)
	return cmd
}

func addGenerateFlags(cmd *cobra.Command, opts *GenerateOptions) {
	cmd.Flags().StringVar(&opts.Region, "region", "", "AWS region")
	cmd.Flags().StringVar(&opts.From, "from", "", "start time in ISO8601 format")
	cmd.Flags().StringVar(&opts.To, "to", "", "end time in ISO8601 format")
	cmd.Flags().StringVar(&opts.IDs, "ids", "", "comma-separated resource ids")
	cmd.Flags().StringVar(&opts.Period, "period", "", "period in seconds, a multiple of 60 (default "+defaultPeriod+")")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("ids")
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command, service, metric string) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	var profile *config.Config
	if opts.Config != "" {
		var err error
		if profile, err = config.Load(opts.Config); err != nil {
			return fail(formatter, ErrCodeConfig, ExitCommandError, err)
		}
	}

	region := opts.Region
	period := opts.Period
	if profile != nil {
		if region == "" {
			region = profile.Defaults.Region
		}
		if period == "" {
			period = profile.Defaults.Period
		}
	}
	if period == "" {
		period = defaultPeriod
	}
	if region == "" {
		return fail(formatter, ErrCodeInput, ExitCommandError,
			errors.New("--region is required (no profile default)"))
	}

	ids := splitIDs(opts.IDs)
	if len(ids) == 0 {
		return fail(formatter, ErrCodeInput, ExitCommandError,
			errors.New("--ids must name at least one resource"))
	}

	var family metrics.Family
	if service == "custom" {
		if profile == nil {
			return fail(formatter, ErrCodeConfig, ExitCommandError,
				errors.New("--config is required for custom families"))
		}
		f, ok := profile.FamilyByName(metric)
		if !ok {
			return fail(formatter, ErrCodeUnsupported, ExitCommandError,
				fmt.Errorf("profile defines no family %q", metric))
		}
		family = config.Builder(f)
	} else {
		var err error
		if family, err = metrics.Lookup(service, metric); err != nil {
			return fail(formatter, ErrCodeUnsupported, ExitCommandError, err)
		}
	}

	opts.logger.Debug().
		Str("service", service).
		Str("metric", metric).
		Str("stat", family.Stat).
		Int("resources", len(ids)).
		Msg("building graph query")

	clause, err := family.Build(ids)
	if err != nil {
		return fail(formatter, ErrCodeInput, ExitCommandError, err)
	}

	url := graph.URL(clause, graph.Params{
		Region: region,
		Start:  opts.From,
		End:    opts.To,
		Stat:   family.Stat,
		Period: period,
	})

	if opts.History != "" {
		if err := recordHistory(cmd, opts, service, metric, region, ids, url); err != nil {
			// The URL is still the answer; a failed history write is only
			// worth a warning.
			opts.logger.Warn().Err(err).Msg("failed to record history entry")
		}
	}

	return formatter.Success(url)
}

func recordHistory(cmd *cobra.Command, opts *GenerateOptions, service, metric, region string, ids []string, url string) error {
	st, err := store.Open(opts.History)
	if err != nil {
		return err
	}
	defer st.Close()
	return st.Append(cmd.Context(), store.Entry{
		Service:     service,
		Metric:      metric,
		Region:      region,
		ResourceIDs: ids,
		URL:         url,
	})
}

func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
