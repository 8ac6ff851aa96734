package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/florist/internal/adapters/locale"
	"go.trai.ch/florist/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the bouquet sorted by freshness and filter it by stem length",
		Long: "Show the bouquet before and after sorting by freshness, then list the flowers\n" +
			"whose stem length lies in a range. The range is read from standard input\n" +
			"unless both --min and --max are given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalogPath, _ := cmd.Flags().GetString("catalog")
			lang, _ := cmd.Flags().GetString("lang")

			opts := app.RunOptions{
				CatalogPath: catalogPath,
				Language:    lang,
			}
			if cmd.Flags().Changed("min") {
				v, _ := cmd.Flags().GetInt("min")
				opts.Min = &v
			}
			if cmd.Flags().Changed("max") {
				v, _ := cmd.Flags().GetInt("max")
				opts.Max = &v
			}

			return c.app.Run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringP("catalog", "c", "", "Catalog file to load instead of the built-in sample")
	cmd.Flags().StringP("lang", "l", locale.DefaultLanguage, "Output language: en or uk")
	cmd.Flags().Int("min", 0, "Minimum stem length in cm (requires --max)")
	cmd.Flags().Int("max", 0, "Maximum stem length in cm (requires --min)")
	cmd.MarkFlagsRequiredTogether("min", "max")
	return cmd
}
