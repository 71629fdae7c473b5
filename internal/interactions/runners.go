package interactions

import (
	"context"
	"net/http"
	"strconv"

	"complyhub/pkg/companylookup"
	"complyhub/pkg/platform/apiclient"
	"complyhub/pkg/screening"
)

// Node names, also used as audit and metric labels.
const (
	CompanyLookupNode  = "CompanyLookup"
	AMLScreeningNode   = "AMLScreening"
	ProofOfAddressNode = "ProofOfAddressCheck"
)

// CodeNotSupported marks executions of nodes that have no backing API call.
const CodeNotSupported = "NOT_SUPPORTED"

// Execution is the result of running a node once.
type Execution struct {
	Node   string              `json:"node"`
	Branch string              `json:"branch"`
	Status int                 `json:"status"`
	Data   any                 `json:"data,omitempty"`
	Error  *apiclient.APIError `json:"error,omitempty"`

	// subject identifies who or what was checked; only its hash is audited.
	subject string
}

// Runner executes a node against its settings attributes (keys without the
// "attributes." prefix).
type Runner interface {
	Run(ctx context.Context, attrs map[string]string) Execution
}

// CompanyLookup is the client surface the company runner needs.
type CompanyLookup interface {
	GetCompanyDetails(ctx context.Context, companyID string) apiclient.Response[companylookup.Company]
}

// Screener is the client surface the screening runner needs.
type Screener interface {
	CreateScreeningCheck(ctx context.Context, req screening.CheckRequest) apiclient.Response[screening.CheckResult]
}

type CompanyLookupRunner struct {
	client CompanyLookup
}

func NewCompanyLookupRunner(client CompanyLookup) *CompanyLookupRunner {
	return &CompanyLookupRunner{client: client}
}

// Run looks up attrs["companyId"]. Data carries the workflow record on
// success and the integration status otherwise.
func (r *CompanyLookupRunner) Run(ctx context.Context, attrs map[string]string) Execution {
	companyID := attrs["companyId"]
	resp := r.client.GetCompanyDetails(ctx, companyID)
	return Execution{
		Node:    CompanyLookupNode,
		Branch:  companylookup.Branch(resp),
		Status:  resp.Status,
		Data:    companylookup.Integrate(resp),
		Error:   resp.Error,
		subject: companyID,
	}
}

type AMLScreeningRunner struct {
	client Screener
}

func NewAMLScreeningRunner(client Screener) *AMLScreeningRunner {
	return &AMLScreeningRunner{client: client}
}

// ScreeningOutput is the data of a successful screening execution.
type ScreeningOutput struct {
	Check    screening.CheckResult `json:"check"`
	Analysis screening.Analysis    `json:"analysis"`
}

// Run creates a check for attrs["clientId"]. screeningType defaults to a
// standard check; searchMode and enableMonitoring are optional.
func (r *AMLScreeningRunner) Run(ctx context.Context, attrs map[string]string) Execution {
	req := screening.CheckRequest{
		ClientID: attrs["clientId"],
		Type:     screening.StandardCheck,
	}
	if t := attrs["screeningType"]; t != "" {
		req.Type = screening.CheckType(t)
	}
	if mode := attrs["searchMode"]; mode != "" {
		req.Options = &screening.Options{ScreeningNameSearchMode: screening.NameSearchMode(mode)}
	}
	if monitor, err := strconv.ParseBool(attrs["enableMonitoring"]); err == nil {
		req.EnableMonitoring = monitor
	}

	resp := r.client.CreateScreeningCheck(ctx, req)
	exec := Execution{
		Node:    AMLScreeningNode,
		Branch:  screening.Branch(resp),
		Status:  resp.Status,
		Error:   resp.Error,
		subject: req.ClientID,
	}
	if resp.OK() {
		exec.Data = ScreeningOutput{Check: *resp.Data, Analysis: screening.AnalyzeResult(*resp.Data)}
	}
	return exec
}

// ProofOfAddressRunner has no client behind it: the compliance API used here
// exposes no document verification endpoint.
type ProofOfAddressRunner struct{}

func NewProofOfAddressRunner() ProofOfAddressRunner {
	return ProofOfAddressRunner{}
}

func (ProofOfAddressRunner) Run(_ context.Context, attrs map[string]string) Execution {
	return Execution{
		Node:   ProofOfAddressNode,
		Branch: "error",
		Status: http.StatusNotImplemented,
		Error: &apiclient.APIError{
			Code:    CodeNotSupported,
			Message: "Proof of address verification is not available",
		},
		subject: attrs["clientId"],
	}
}
