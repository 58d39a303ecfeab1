package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// rulesCommand creates the rules command, which previews template
// selection without writing a PDF.
func (c *CLI) rulesCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the template each roster record gets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			assignments, err := newRunner(cmd).Rules(cfg, input)
			if err != nil {
				return err
			}

			var order []string
			counts := make(map[string]int)
			for _, a := range assignments {
				rule := "default"
				if a.Rule > 0 {
					rule = "rule " + strconv.Itoa(a.Rule)
				}
				printAssignment(c.Out, a.Record.Line, a.Record.Name, a.Record.Title, a.Template, rule)
				if counts[a.Template] == 0 {
					order = append(order, a.Template)
				}
				counts[a.Template]++
			}

			printNewline(c.Out)
			for _, id := range order {
				printKeyValue(c.Out, id, fmt.Sprintf("%d badges", counts[id]))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "roster CSV (default from config, data.csv)")
	return cmd
}
