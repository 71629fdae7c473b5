package main

import (
	"github.com/spf13/cobra"

	"complyhub/internal/interactions"
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "Print the interaction node descriptors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd.OutOrStdout(), []interactions.Descriptor{
			interactions.AMLScreeningDescriptor(),
			interactions.CompanyLookupDescriptor(),
			interactions.ProofOfAddressDescriptor(),
		})
	},
}

func init() {
	rootCmd.AddCommand(nodesCmd)
}
