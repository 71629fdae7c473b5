package main

import (
	"github.com/spf13/cobra"

	"complyhub/pkg/companylookup"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <company-id>",
	Short: "Look up one company",
	Long:  "Fetch a company record and report its data quality. With --workflow the record is printed in the workflow format instead.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

var lookupManyCmd = &cobra.Command{
	Use:   "lookup-many <company-id>...",
	Short: "Look up several companies concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLookupMany,
}

var workflowFormat bool

func init() {
	lookupCmd.Flags().BoolVarP(&workflowFormat, "workflow", "w", false, "Print the workflow integration format")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(lookupManyCmd)
}

type lookupOutput struct {
	Response    any                        `json:"response"`
	DataQuality *companylookup.DataQuality `json:"dataQuality,omitempty"`
}

func runLookup(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.Close()

	resp := a.Companies.GetCompanyDetails(cmd.Context(), args[0])
	if workflowFormat {
		if err := printJSON(cmd.OutOrStdout(), companylookup.Integrate(resp)); err != nil {
			return err
		}
		return resp.Err()
	}

	out := lookupOutput{Response: resp}
	if resp.OK() {
		quality := companylookup.ValidateCompanyData(*resp.Data)
		out.DataQuality = &quality
	}
	if err := printJSON(cmd.OutOrStdout(), out); err != nil {
		return err
	}
	return resp.Err()
}

func runLookupMany(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.Close()

	return printJSON(cmd.OutOrStdout(), companylookup.LookupMany(cmd.Context(), a.Companies, args))
}
