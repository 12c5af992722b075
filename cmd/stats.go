package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mca/internal/config"
	"mca/internal/rollup"
	"mca/pkg/domain"
)

// statsFlags are shared by every stats subcommand.
type statsFlags struct {
	asOf string
}

func (f statsFlags) options(ctx context.Context, cfg *config.Config) (rollup.Options, error) {
	options := rollup.NewOptions(cfg, loadCalendar(ctx, cfg))
	if f.asOf == "" {
		return options, nil
	}

	asOf, err := time.Parse(time.DateOnly, f.asOf)
	if err != nil {
		return rollup.Options{}, fmt.Errorf("invalid as-of date %q: %w", f.asOf, err)
	}
	options.Now = func() time.Time { return asOf }

	return options, nil
}

// statsRun loads the rollup and prints what fn returns as JSON.
func statsRun(cfg *config.Config, flags *statsFlags, fn func(context.Context, rollup.Rollup, string) (any, error)) func(
	*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		options, err := flags.options(ctx, cfg)
		if err != nil {
			return err
		}

		strg, closeStrg := getPostgres(ctx, cfg)
		defer closeStrg()

		res, err := fn(ctx, rollup.New(strg, options), args[0])
		if err != nil {
			return err
		}

		return printJSON(res)
	}
}

func statsCommand(cfg *config.Config) *cobra.Command {
	flags := &statsFlags{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Computes funding statistics and their rollups",
	}
	cmd.PersistentFlags().StringVar(&flags.asOf, "as-of", "", "Compute figures as of this date, defaults to now")

	var cached, refresh bool
	fundingCmd := &cobra.Command{
		Use:   "funding FUNDING_ID",
		Short: "Prints the stats of a funding",
		Args:  cobra.ExactArgs(1),
		RunE: statsRun(cfg, flags, func(ctx context.Context, r rollup.Rollup, arg string) (any, error) {
			id, err := parseUUID[domain.FundingID](arg)
			if err != nil {
				return nil, err
			}

			switch {
			case refresh:
				return r.Refresh(ctx, id) //nolint: wrapcheck
			case cached:
				return r.CachedFundingStats(ctx, id) //nolint: wrapcheck
			default:
				return r.FundingStats(ctx, id) //nolint: wrapcheck
			}
		}),
	}
	fundingCmd.Flags().BoolVar(&cached, "cached", false, "Print the last stored snapshot")
	fundingCmd.Flags().BoolVar(&refresh, "refresh", false, "Recompute and store the snapshot")
	fundingCmd.MarkFlagsMutuallyExclusive("cached", "refresh")

	cmd.AddCommand(
		fundingCmd,
		&cobra.Command{
			Use:   "application APPLICATION_ID",
			Short: "Prints the totals of an application's fundings",
			Args:  cobra.ExactArgs(1),
			RunE: statsRun(cfg, flags, func(ctx context.Context, r rollup.Rollup, arg string) (any, error) {
				id, err := parseUUID[domain.ApplicationID](arg)
				if err != nil {
					return nil, err
				}

				return r.ApplicationStats(ctx, id) //nolint: wrapcheck
			}),
		},
		&cobra.Command{
			Use:   "merchant MERCHANT_ID",
			Short: "Prints the totals of a merchant's fundings",
			Args:  cobra.ExactArgs(1),
			RunE: statsRun(cfg, flags, func(ctx context.Context, r rollup.Rollup, arg string) (any, error) {
				id, err := parseUUID[domain.MerchantID](arg)
				if err != nil {
					return nil, err
				}

				return r.MerchantStats(ctx, id) //nolint: wrapcheck
			}),
		},
		&cobra.Command{
			Use:   "funder FUNDER_ID",
			Short: "Prints the totals of a funder's portfolio",
			Args:  cobra.ExactArgs(1),
			RunE: statsRun(cfg, flags, func(ctx context.Context, r rollup.Rollup, arg string) (any, error) {
				id, err := parseUUID[domain.PartyID](arg)
				if err != nil {
					return nil, err
				}

				return r.FunderStats(ctx, id) //nolint: wrapcheck
			}),
		},
		&cobra.Command{
			Use:   "syndicator SYNDICATOR_ID",
			Short: "Prints the participations and offers of a syndicator",
			Args:  cobra.ExactArgs(1),
			RunE: statsRun(cfg, flags, func(ctx context.Context, r rollup.Rollup, arg string) (any, error) {
				id, err := parseUUID[domain.PartyID](arg)
				if err != nil {
					return nil, err
				}

				return r.SyndicatorStats(ctx, id) //nolint: wrapcheck
			}),
		},
	)

	return cmd
}
