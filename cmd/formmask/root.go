package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formmask/internal/logging"
	"github.com/goliatone/go-formmask/pkg/numeric"
)

// app carries state shared by subcommands.
type app struct {
	logLevel string
	logger   *log.Logger

	minValue int
	maxValue int
	decimals int
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "formmask",
		Short:        "Constrained numeric and IPv4 input checks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		Example: `  # Check values against a range with two decimal places
  formmask check --min 0 --max 10 --decimals 2 9.99 9.999 12

  # Check IPv4 addresses
  formmask address 192.168.1.1 192.168.1.300

  # Type a value key by key
  formmask type numeric --min -50 --max 50

  # Fill a form described in YAML or an OpenAPI schema
  formmask form --definition link.yaml
  formmask form --openapi api.yaml --schema Interface`,
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")

	root.AddCommand(
		newCheckCmd(a),
		newAddressCmd(a),
		newTypeCmd(a),
		newFormCmd(a),
	)
	return root
}

func (a *app) addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&a.minValue, "min", numeric.DefaultMin, "lowest accepted value")
	cmd.Flags().IntVar(&a.maxValue, "max", numeric.DefaultMax, "highest accepted value")
	cmd.Flags().IntVar(&a.decimals, "decimals", 0, "decimal places allowed (0-4)")
}

// validator builds a range validator from the range flags. Conflicting bounds
// keep the defaults, exactly as Configure does.
func (a *app) validator() *numeric.Validator {
	v := numeric.NewValidator()
	v.Configure(a.minValue, a.maxValue, a.decimals)
	if r := v.Range(); r.Min != a.minValue || r.Max != a.maxValue {
		a.logger.Warn("conflicting bounds ignored", "min", a.minValue, "max", a.maxValue, "using", r)
	}
	return v
}
