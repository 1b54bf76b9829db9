package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formmask/pkg/formdef"
	"github.com/goliatone/go-formmask/pkg/openapi"
	"github.com/goliatone/go-formmask/pkg/renderers/tui"
	"github.com/goliatone/go-formmask/pkg/widgets"
)

type formOptions struct {
	definition string
	document   string
	schema     string
	keys       bool
}

func newFormCmd(a *app) *cobra.Command {
	opts := &formOptions{}
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Prompt for every field of a form definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := loadDefinition(cmd, opts)
			if err != nil {
				return err
			}
			a.logger.Debug("definition loaded", "name", def.Name, "fields", len(def.Fields))

			registry := widgets.NewRegistry()
			registry.Decorate(&def)
			items, err := registry.BuildAll(def)
			if err != nil {
				return err
			}

			var values map[string]string
			if opts.keys {
				values, err = collectKeys(cmd, items)
			} else {
				values, err = tui.New().Collect(cmd.Context(), items)
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(values)
		},
	}
	cmd.Flags().StringVar(&opts.definition, "definition", "", "JSON or YAML form definition file")
	cmd.Flags().StringVar(&opts.document, "openapi", "", "OpenAPI document to derive fields from")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "component schema name (with --openapi)")
	cmd.Flags().BoolVar(&opts.keys, "keys", false, "edit fields key by key instead of line prompts")
	cmd.MarkFlagsMutuallyExclusive("definition", "openapi")
	cmd.MarkFlagsRequiredTogether("openapi", "schema")
	return cmd
}

func loadDefinition(cmd *cobra.Command, opts *formOptions) (formdef.Definition, error) {
	switch {
	case opts.definition != "":
		return formdef.LoadFile(opts.definition)
	case opts.document != "":
		doc, err := openapi.LoadFile(opts.document)
		if err != nil {
			return formdef.Definition{}, err
		}
		return openapi.FieldsFromSchema(cmd.Context(), doc, opts.schema)
	default:
		return formdef.Definition{}, errors.New("one of --definition or --openapi is required")
	}
}

func collectKeys(cmd *cobra.Command, items []widgets.Widget) (map[string]string, error) {
	values := make(map[string]string, len(items))
	stdio := terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	err := tui.RunTerminal(stdio, tui.DefaultTheme, func(s *tui.KeySession) error {
		for _, w := range items {
			text, err := s.Edit(cmd.Context(), w)
			if err != nil {
				return err
			}
			if !w.Valid() {
				return fmt.Errorf("field %q: %q is not a complete value", w.Name(), text)
			}
			values[w.Name()] = text
		}
		return nil
	})
	return values, err
}
