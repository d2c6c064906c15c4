package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"poolbalance/internal/dosage"
)

type CalculateOptions struct {
	Type          string
	Current       float64
	Target        float64
	Volume        float64
	Product       string
	Concentration float64
	Language      string
	JSON          bool
}

func DefaultCalculateOptions() *CalculateOptions {
	return &CalculateOptions{
		Language: dosage.LanguageSpanish,
	}
}

func NewCmdCalculate() *cobra.Command {
	o := DefaultCalculateOptions()
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute the dose that moves the water from the current to the target value.",
		Example: `  dosectl calculate --type ph --current 7.0 --target 7.8 --volume 40000 --product carbonato_sodio
  dosectl calculate --type stabilizer --current 100 --target 50 --volume 20000 --product dilucion_agua --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(cmd.OutOrStdout(), cmd.Flags())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	for _, name := range []string{"type", "current", "target", "volume", "product"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func (o *CalculateOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Type, "type", "t", o.Type, "Calculation type. One of: (disinfectant, ph, alkalinity, stabilizer).")
	fs.Float64Var(&o.Current, "current", o.Current, "Current measured value (ppm, or pH units).")
	fs.Float64Var(&o.Target, "target", o.Target, "Target value (ppm, or pH units).")
	fs.Float64VarP(&o.Volume, "volume", "v", o.Volume, "Water volume in liters.")
	fs.StringVarP(&o.Product, "product", "p", o.Product, "Product identifier, see 'dosectl products'.")
	fs.Float64Var(&o.Concentration, "concentration", o.Concentration, "Override of the product strength in percent.")
	fs.StringVarP(&o.Language, "language", "l", o.Language, "Notes language. One of: (es, en).")
	fs.BoolVar(&o.JSON, "json", o.JSON, "Print the full result as JSON.")
}

func (o *CalculateOptions) Validate() error {
	o.Language = strings.ToLower(o.Language)
	if !dosage.SupportedLanguage(o.Language) {
		return fmt.Errorf("unsupported language %q", o.Language)
	}
	return nil
}

func (o *CalculateOptions) Run(out io.Writer, fs *pflag.FlagSet) error {
	req := dosage.Request{
		CalculationType: o.Type,
		CurrentValue:    o.Current,
		TargetValue:     o.Target,
		VolumeLiters:    o.Volume,
		ProductType:     o.Product,
		Language:        o.Language,
	}
	if fs.Changed("concentration") {
		c := o.Concentration
		req.Concentration = &c
	}

	result, err := dosage.Calculate(req)
	if err != nil {
		return err
	}

	if o.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	_, err = fmt.Fprintln(out, result.Notes)
	return err
}
