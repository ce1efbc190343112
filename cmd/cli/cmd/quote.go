package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	response "property_quote/internal/adapter/http/dto/response"
	"property_quote/internal/domain/entities"
	"property_quote/internal/infrastructure/documents"
	"property_quote/internal/usecase"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type quoteOptions struct {
	street, city, state, zip string
	sqft, coverage           float64
	output                   string
}

func newQuoteCmd(a *app) *cobra.Command {
	opts := &quoteOptions{}

	c := &cobra.Command{
		Use:   "quote",
		Short: "Price a property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuote(cmd, a, opts)
		},
	}

	c.Flags().StringVar(&opts.street, "street", "", "street address")
	c.Flags().StringVar(&opts.city, "city", "", "city")
	c.Flags().StringVar(&opts.state, "state", "", "two-letter state code")
	c.Flags().StringVar(&opts.zip, "zip", "", "five digit zip code")
	c.Flags().Float64Var(&opts.sqft, "sqft", 0, "property size in square feet")
	c.Flags().Float64Var(&opts.coverage, "coverage", 0, "coverage amount in dollars")
	c.Flags().StringVarP(&opts.output, "output", "o", "json", "output format (json, text)")
	return c
}

func runQuote(cmd *cobra.Command, a *app, opts *quoteOptions) error {
	if opts.output != "json" && opts.output != "text" {
		return fmt.Errorf("unknown output format %q (want json or text)", opts.output)
	}

	ctx := cmd.Context()
	repos, err := a.openRepositories(ctx)
	if err != nil {
		return err
	}
	defer repos.Close()

	property := entities.Property{
		Address: &entities.Address{
			Street:  opts.street,
			City:    opts.city,
			State:   opts.state,
			ZipCode: opts.zip,
		},
		SquareFeet: opts.sqft,
		Coverage:   opts.coverage,
	}

	uc := usecase.NewQuoteUseCase(repos.Risks, repos.Rates, a.log)
	quote, err := uc.GetQuote(ctx, property)
	if err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			for _, msg := range vErr.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), "  -", msg)
			}
			return errors.New("validation failed")
		}
		if errors.Is(err, usecase.ErrQuoteUnavailable) {
			return errors.New(usecase.QuoteUnavailableMessage)
		}
		return err
	}

	if opts.output == "text" {
		return writeQuoteText(cmd.OutOrStdout(), quote)
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(response.FromQuote(quote))
}

func writeQuoteText(w io.Writer, q entities.Quote) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Quote\t%s\n", q.ID)
	fmt.Fprintf(tw, "Status\t%s\n", q.Status)
	fmt.Fprintf(tw, "Base rate\t%s / sq ft\n", documents.FormatCurrency(q.Breakdown.BaseRate))
	fmt.Fprintf(tw, "Coverage multiplier\tx%s\n", documents.FormatNumber(q.Breakdown.CoverageMultiplier, -1))
	fmt.Fprintf(tw, "Subtotal\t%s\n", documents.FormatCurrency(q.Breakdown.Subtotal))
	fmt.Fprintf(tw, "Risk multiplier\tx%s\n", documents.FormatNumber(q.Breakdown.RiskMultiplier, -1))
	fmt.Fprintf(tw, "Amount\t%s\n", documents.FormatCurrency(q.Amount))
	if c := q.ContactInfo; c != nil {
		fmt.Fprintf(tw, "Contact\t%s\n", c.Message)
		fmt.Fprintf(tw, "Phone\t%s\n", c.Phone)
		fmt.Fprintf(tw, "Email\t%s\n", c.Email)
	}
	return tw.Flush()
}
