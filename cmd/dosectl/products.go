package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"poolbalance/internal/dosage"
)

func NewCmdProducts() *cobra.Command {
	var language string
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the known product identifiers.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tFORM")
			for _, id := range dosage.Products() {
				p, _ := dosage.LookupProduct(id)
				form := "solid"
				if p.Liquid {
					form = "liquid"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id, dosage.ProductName(id, language), p.Kind, form)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&language, "language", "l", dosage.LanguageSpanish, "Name language. One of: (es, en).")
	return cmd
}
