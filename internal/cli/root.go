package cli

import (
	"github.com/spf13/cobra"
)

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	input  string // roster CSV, overrides config input
	output string // PDF path, overrides config output
}

func (o *generateOpts) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.input, "input", "i", "", "roster CSV (default from config, data.csv)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output PDF (default from config, badges.pdf)")
}

// generateCommand creates the generate command. It does what the root
// command does when run alone.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Lay out one badge per roster record",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts generateOpts) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(cmd.Context()))
	res, err := newRunner(cmd).Badges(cmd.Context(), cfg, opts.input, opts.output)
	if err != nil {
		return err
	}
	prog.done("Generated badges")

	printSuccess(c.Out, "Generated %d badges", res.Badges)
	printFile(c.Out, res.Output)
	printStats(c.Out, res.Pages, res.Stats.Templates, res.Font.Name)
	return nil
}
