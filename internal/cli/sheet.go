package cli

import (
	"cmp"

	"github.com/spf13/cobra"

	"github.com/larktraditionalarts/badge-pdf-creator/pkg/config"
)

// sheetOpts holds the flags shared by the blank and help-sheet commands.
type sheetOpts struct {
	output string
	pages  int
}

func (o *sheetOpts) bind(cmd *cobra.Command, defaultOutput string) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output PDF (default from config, "+defaultOutput+")")
	cmd.Flags().IntVar(&o.pages, "pages", 1, "number of pages")
}

// blankCommand creates the blank command for printing unnamed badge stock.
func (c *CLI) blankCommand() *cobra.Command {
	var opts sheetOpts

	cmd := &cobra.Command{
		Use:   "blank",
		Short: "Fill pages with the default template and no names",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSheet(cmd, opts, func(cfg *config.Config) (string, string) {
				return cfg.DefaultTemplate, cfg.BlankOutput
			})
		},
	}
	opts.bind(cmd, "blank-badges.pdf")
	return cmd
}

// helpSheetCommand creates the help-sheet command for printing helper badges.
func (c *CLI) helpSheetCommand() *cobra.Command {
	var opts sheetOpts

	cmd := &cobra.Command{
		Use:   "help-sheet",
		Short: "Fill pages with the help template and no names",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSheet(cmd, opts, func(cfg *config.Config) (string, string) {
				return cfg.HelpTemplate, cfg.HelpOutput
			})
		},
	}
	opts.bind(cmd, "help-badges.pdf")
	return cmd
}

// runSheet tiles the template chosen by pick, which also supplies the
// configured output path.
func (c *CLI) runSheet(cmd *cobra.Command, opts sheetOpts, pick func(*config.Config) (id, output string)) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	id, output := pick(cfg)
	output = cmp.Or(opts.output, output)

	prog := newProgress(loggerFromContext(cmd.Context()))
	res, err := newRunner(cmd).Sheet(cmd.Context(), cfg, id, opts.pages, output)
	if err != nil {
		return err
	}
	prog.done("Tiled " + id)

	printSuccess(c.Out, "Tiled template %s", StyleHighlight.Render(id))
	printFile(c.Out, res.Output)
	printStats(c.Out, res.Pages, 1, "")
	return nil
}
