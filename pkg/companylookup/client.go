// Package companylookup fetches company registry records from the compliance
// API and reshapes them for workflow use.
package companylookup

import (
	"context"
	"net/url"
	"time"

	"complyhub/pkg/platform/apiclient"
)

const (
	// Name labels this client in logs, metrics and spans.
	Name = "company_lookup"

	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "Design-Studio/1.0"

	CodeInvalidCompanyID = "INVALID_COMPANY_ID"
	CodeCompanyNotFound  = "COMPANY_NOT_FOUND"
)

type (
	Config = apiclient.Config
	Option = apiclient.Option
)

var statuses = apiclient.BaseStatusTable().With(404, CodeCompanyNotFound, "Company not found")

// Client looks up companies by registry id. It is safe for concurrent use.
type Client struct {
	api *apiclient.Client
}

// New returns an error only when cfg is invalid.
func New(cfg Config, opts ...Option) (*Client, error) {
	api, err := apiclient.New(Name, cfg.WithDefaults(DefaultTimeout, DefaultUserAgent), statuses, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{api: api}, nil
}

// GetCompanyDetails fetches one company. An empty id is rejected without a
// request being sent.
func (c *Client) GetCompanyDetails(ctx context.Context, companyID string) apiclient.Response[Company] {
	if companyID == "" {
		return apiclient.Invalid[Company](CodeInvalidCompanyID, "Company ID is required and must be a string")
	}
	return apiclient.Get[Company](ctx, c.api, "get_company", "/lookup/companies/"+url.PathEscape(companyID))
}
