package cli

import (
	"fmt"
	"sort"

	"github.com/acg-data/bizgenius-sub001/internal/infrastructure/llm"

	"github.com/spf13/cobra"
)

func newCostCmd() *cobra.Command {
	var (
		provider string
		model    string
		input    int
		output   int
	)
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Price a token count with the built-in pricing table",
		Long: `Prints the dollar cost of one call. Without --provider, lists every
priced provider and model.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := llm.DefaultCatalog()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if provider == "" {
				providers := make([]string, 0, len(catalog.Pricing))
				for p := range catalog.Pricing {
					providers = append(providers, p)
				}
				sort.Strings(providers)
				for _, p := range providers {
					models := make([]string, 0, len(catalog.Pricing[p]))
					for m := range catalog.Pricing[p] {
						models = append(models, m)
					}
					sort.Strings(models)
					for _, m := range models {
						price := catalog.Pricing[p][m]
						fmt.Fprintf(w, "%-12s %-48s in=$%.4f/M out=$%.4f/M\n", p, m, price.Input, price.Output)
					}
				}
				return nil
			}

			if _, ok := catalog.Pricing[provider][model]; !ok {
				return fmt.Errorf("no price for provider=%s model=%s", provider, model)
			}
			if input < 0 || output < 0 {
				return fmt.Errorf("token counts must not be negative")
			}
			b := llm.NewPricingTable(catalog.Pricing).CalculateCost(provider, model, input, output)
			fmt.Fprintf(w, "provider=%s model=%s input_tokens=%d output_tokens=%d\n", provider, model, input, output)
			fmt.Fprintf(w, "input_cost=$%.6f output_cost=$%.6f total_cost=$%.6f\n", b.InputCost, b.OutputCost, b.TotalCost)
			return nil
		},
	}
	cmd.Flags().StringVar(&provider, "provider", "", "Provider id (e.g. groq)")
	cmd.Flags().StringVar(&model, "model", "", "Model id")
	cmd.Flags().IntVar(&input, "input", 0, "Input tokens")
	cmd.Flags().IntVar(&output, "output", 0, "Output tokens")
	return cmd
}
