package main

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formmask/pkg/address"
	"github.com/goliatone/go-formmask/pkg/numeric"
	"github.com/goliatone/go-formmask/pkg/renderers/tui"
)

func newTypeCmd(a *app) *cobra.Command {
	var seed string
	cmd := &cobra.Command{
		Use:       "type numeric|address",
		Short:     "Edit a single widget key by key",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"numeric", "address"},
		RunE: func(cmd *cobra.Command, args []string) error {
			stdio := terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
			ctx := cmd.Context()

			var text string
			var valid bool
			err := tui.RunTerminal(stdio, tui.DefaultTheme, func(s *tui.KeySession) error {
				switch args[0] {
				case "numeric":
					opts := []numeric.Option{numeric.WithRange(a.validator().Range())}
					if seed != "" {
						opts = append(opts, numeric.WithSeed(seed))
					}
					field := numeric.NewField(opts...)
					var err error
					text, err = s.EditNumeric(ctx, "value", field)
					valid = field.Valid()
					return err
				case "address":
					if seed == "" {
						seed = address.DefaultAddress
					}
					field := address.NewFieldWith(seed)
					var err error
					text, err = s.EditAddress(ctx, "address", field)
					valid = field.Valid()
					return err
				default:
					return fmt.Errorf("unknown widget %q (want numeric or address)", args[0])
				}
			})
			if err != nil {
				return err
			}

			a.logger.Debug("edit finished", "text", text, "valid", valid)
			fmt.Fprintln(cmd.OutOrStdout(), text)
			if !valid {
				return fmt.Errorf("%q is not a complete value", text)
			}
			return nil
		},
	}
	a.addRangeFlags(cmd)
	cmd.Flags().StringVar(&seed, "seed", "", "initial text")
	return cmd
}
