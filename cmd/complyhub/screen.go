package main

import (
	"github.com/spf13/cobra"

	"complyhub/pkg/platform/apiclient"
	"complyhub/pkg/screening"
)

type screeningResponse = apiclient.Response[screening.CheckResult]

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Create and inspect AML screening checks",
}

var screenCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a screening check and analyse the result",
	Args:  cobra.NoArgs,
	RunE:  runScreenCreate,
}

var screenGetCmd = &cobra.Command{
	Use:   "get <check-id>",
	Short: "Fetch a screening check and analyse the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runScreenGet,
}

var screenListCmd = &cobra.Command{
	Use:   "list",
	Short: "List screening checks with an overall risk verdict",
	Args:  cobra.NoArgs,
	RunE:  runScreenList,
}

var (
	clientID   string
	checkType  string
	searchMode string
	monitor    bool
	listLimit  int
)

func init() {
	screenCreateCmd.Flags().StringVarP(&clientID, "client-id", "c", "", "Client to screen (required)")
	screenCreateCmd.Flags().StringVarP(&checkType, "type", "t", string(screening.StandardCheck), "standard_screening_check or extensive_screening_check")
	screenCreateCmd.Flags().StringVarP(&searchMode, "search-mode", "m", "", "fuzzy or precise")
	screenCreateCmd.Flags().BoolVar(&monitor, "monitor", false, "Enable ongoing monitoring")

	screenListCmd.Flags().StringVarP(&clientID, "client-id", "c", "", "Only list checks for this client")
	screenListCmd.Flags().IntVarP(&listLimit, "limit", "l", 0, "Maximum number of checks")

	screenCmd.AddCommand(screenCreateCmd, screenGetCmd, screenListCmd)
	rootCmd.AddCommand(screenCmd)
}

type checkOutput struct {
	Response any                 `json:"response"`
	Analysis *screening.Analysis `json:"analysis,omitempty"`
}

type listOutput struct {
	Response    any    `json:"response"`
	OverallRisk string `json:"overallRisk,omitempty"`
}

func runScreenCreate(cmd *cobra.Command, _ []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.Close()

	req := screening.CheckRequest{
		ClientID:         clientID,
		Type:             screening.CheckType(checkType),
		EnableMonitoring: monitor,
	}
	if searchMode != "" {
		req.Options = &screening.Options{ScreeningNameSearchMode: screening.NameSearchMode(searchMode)}
	}
	return printCheck(cmd, a.Screening.CreateScreeningCheck(cmd.Context(), req))
}

func runScreenGet(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.Close()

	return printCheck(cmd, a.Screening.GetScreeningCheck(cmd.Context(), args[0]))
}

func runScreenList(cmd *cobra.Command, _ []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.Close()

	resp := a.Screening.ListScreeningChecks(cmd.Context(), clientID, listLimit)
	out := listOutput{Response: resp}
	if resp.OK() {
		out.OverallRisk = screening.AssessOverallRisk(*resp.Data)
	}
	if err := printJSON(cmd.OutOrStdout(), out); err != nil {
		return err
	}
	return resp.Err()
}

func printCheck(cmd *cobra.Command, resp screeningResponse) error {
	out := checkOutput{Response: resp}
	if resp.OK() {
		analysis := screening.AnalyzeResult(*resp.Data)
		out.Analysis = &analysis
	}
	if err := printJSON(cmd.OutOrStdout(), out); err != nil {
		return err
	}
	return resp.Err()
}
