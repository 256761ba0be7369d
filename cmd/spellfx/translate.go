package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type translation struct {
	Formula     string `json:"formula"`
	EffectType  string `json:"effectType"`
	Style       string `json:"style"`
	Translation string `json:"translation"`
}

func (a *app) translateCmd() *cobra.Command {
	var effectType string

	cmd := &cobra.Command{
		Use:   "translate <formula>",
		Short: "Translate a formula into readable text",
		Long: `Translate renders a dice, card or coin formula the way it appears in effect descriptions.
Formulas the parser does not recognize are cleaned up and printed as is.`,
		Example: `  spellfx translate "2d6 + INT"
  spellfx translate --style compact "FLIP_COINS(5) * 2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := translation{
				Formula:     args[0],
				EffectType:  effectType,
				Style:       string(a.translator.Style()),
				Translation: a.translator.Translate(args[0], effectType),
			}

			if a.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), t)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Translation)
			return err
		},
	}

	cmd.Flags().StringVarP(&effectType, "type", "t", "damage", "Effect type the formula belongs to (damage, healing, ...)")

	return cmd
}
