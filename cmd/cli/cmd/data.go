package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newDataCmd(a *app) *cobra.Command {
	data := &cobra.Command{
		Use:   "data",
		Short: "Inspect quote data",
	}

	data.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Load risk factors and quote rules and verify the rate table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			repos, err := a.openRepositories(ctx)
			if err != nil {
				return err
			}
			defer repos.Close()

			if _, _, err := repos.Preload(ctx); err != nil {
				return err
			}
			risks, err := repos.Risks.Table(ctx)
			if err != nil {
				return err
			}
			rates, err := repos.Rates.Rates(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source: %s\n", repos.Source)
			fmt.Fprintf(out, "zip codes: %d (default x%v %s)\n", len(risks.ByZipCode), risks.Default.Multiplier, risks.Default.Risk)

			zips := make([]string, 0, len(risks.ByZipCode))
			for zip := range risks.ByZipCode {
				zips = append(zips, zip)
			}
			sort.Strings(zips)
			for _, zip := range zips {
				r := risks.ByZipCode[zip]
				fmt.Fprintf(out, "  %s x%v %s\n", zip, r.Multiplier, r.Risk)
			}

			fmt.Fprintf(out, "base rate: %v per sq ft\n", rates.BaseRatePerSqFt)
			fmt.Fprintf(out, "high value threshold: %v\n", rates.HighValueThreshold)
			fmt.Fprintf(out, "coverage tiers: %d\n", len(rates.CoverageTiers))
			for _, t := range rates.CoverageTiers {
				fmt.Fprintf(out, "  %s\n", t)
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	})
	return data
}
