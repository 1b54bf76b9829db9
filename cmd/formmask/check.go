package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formmask/internal/logging"
	"github.com/goliatone/go-formmask/pkg/address"
	"github.com/goliatone/go-formmask/pkg/numeric"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check VALUE...",
		Short: "Classify values against a numeric range",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.validator()
			a.logger.Debug("checking values", "pattern", v.Pattern(), "count", len(args))

			out := cmd.OutOrStdout()
			rejected := 0
			for _, value := range args {
				status := v.Classify(value)
				switch status {
				case numeric.StatusValid:
					fmt.Fprintf(out, "%s\t%s\n", value, logging.OKStyle.Render(status.String()))
				case numeric.StatusProvisional:
					fmt.Fprintf(out, "%s\t%s\n", value, status)
				default:
					rejected++
					fmt.Fprintf(out, "%s\t%s\t%s\n", value, status, logging.HintStyle.Render(v.Hint()))
				}
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d values rejected", rejected, len(args))
			}
			return nil
		},
	}
	a.addRangeFlags(cmd)
	return cmd
}

func newAddressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "address ADDR...",
		Short: "Check IPv4 addresses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rejected := 0
			for _, addr := range args {
				if _, err := address.Parse(addr); err != nil {
					rejected++
					a.logger.Debug("address rejected", "address", addr, "err", err)
					fmt.Fprintf(out, "%s\tinvalid\t%s\n", addr, logging.HintStyle.Render(address.InvalidHint))
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", addr, logging.OKStyle.Render("valid"))
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d addresses rejected", rejected, len(args))
			}
			return nil
		},
	}
}
