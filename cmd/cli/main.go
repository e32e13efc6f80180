package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/fxmirror/fxmirror/infra/feed"
	"github.com/fxmirror/fxmirror/infra/initializer"
	"github.com/fxmirror/fxmirror/pkg/config"
	"github.com/fxmirror/fxmirror/pkg/currency"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "fxmirror",
		Short:   "Convert currencies against a mirrored public exchange rate feed",
		Version: version,
	}

	root.AddCommand(
		newConvertCmd(),
		newCurrenciesCmd(),
		newRatesCmd(),
		newSymbolCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newFeedClient() (*feed.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	return deps.Feed, nil
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert AMOUNT FROM TO",
		Short: "Convert an amount between two currencies",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			from, to := args[1], args[2]

			client, err := newFeedClient()
			if err != nil {
				return err
			}

			converted, err := client.Convert(cmd.Context(), amount, from, to)
			if err != nil {
				return err
			}

			color.Green("%s %s = %s%s %s",
				currency.Format(amount, from), strings.ToUpper(from),
				currency.Symbol(to), currency.Format(converted, to), strings.ToUpper(to))
			return nil
		},
	}
}

func newCurrenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List all currency codes the feed knows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newFeedClient()
			if err != nil {
				return err
			}

			list, err := client.Currencies(cmd.Context())
			if err != nil {
				return err
			}

			codes := make([]string, 0, len(list))
			for code := range list {
				codes = append(codes, code)
			}
			sort.Strings(codes)

			bold := color.New(color.Bold)
			for _, code := range codes {
				bold.Printf("%-8s", strings.ToUpper(code))
				fmt.Println(list[code])
			}
			return nil
		},
	}
}

func newRatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates BASE",
		Short: "Print the rate table for a base currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newFeedClient()
			if err != nil {
				return err
			}

			table, err := client.Rates(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			codes := make([]string, 0, len(table))
			for code := range table {
				codes = append(codes, code)
			}
			sort.Strings(codes)

			for _, code := range codes {
				fmt.Printf("%-8s%.6f\n", strings.ToUpper(code), table[code])
			}
			return nil
		},
	}
}

func newSymbolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbol CODE",
		Short: "Print the display symbol for a currency code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(currency.Symbol(args[0]))
			return nil
		},
	}
}
