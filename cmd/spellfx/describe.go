package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
	"github.com/KirkDiggler/rpg-spellfx/internal/resistance"
)

type statDescription struct {
	Stat        string `json:"stat"`
	Magnitude   string `json:"magnitude"`
	Description string `json:"description"`
}

func (a *app) describeCmd() *cobra.Command {
	var debuff bool

	cmd := &cobra.Command{
		Use:   "describe <stat> <magnitude>",
		Short: "Describe a resistance or absorption stat",
		Long: `Describe phrases a stat modifier. Resistance stats take a percentage magnitude;
absorption stats also accept a formula.`,
		Example: `  spellfx describe fire_resistance 50
  spellfx describe frost_absorption 2d6 --debuff`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stat, raw := args[0], args[1]

			var text string
			if resistance.IsAbsorptionStat(stat) {
				text = resistance.DescribeAbsorption(stat, spell.Text(raw), !debuff)
			} else {
				n, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return errors.InvalidArgumentf("magnitude must be a number: %s", raw)
				}
				if debuff {
					n = -n
				}
				text = a.describer.DescribeStat(stat, n)
			}

			d := statDescription{Stat: stat, Magnitude: raw, Description: text}
			if a.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), d)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), d.Description)
			return err
		},
	}

	cmd.Flags().BoolVar(&debuff, "debuff", false, "Describe the stat as a debuff")

	return cmd
}
