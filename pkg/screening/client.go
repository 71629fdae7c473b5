// Package screening creates and reads AML screening checks (watchlist, PEP and
// adverse media) and turns their results into a risk assessment.
package screening

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"complyhub/pkg/platform/apiclient"
)

const (
	// Name labels this client in logs, metrics and spans.
	Name = "screening"

	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "Design-Studio-AML/1.0"

	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidCheckID = "INVALID_CHECK_ID"
	CodeCheckNotFound  = "CHECK_NOT_FOUND"
)

type (
	Config = apiclient.Config
	Option = apiclient.Option
)

var statuses = apiclient.BaseStatusTable().With(404, CodeCheckNotFound, "Screening check not found")

// Client talks to the checks endpoints. It is safe for concurrent use.
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

// CreateScreeningCheck validates req locally and then submits it. Every
// violation is reported together.
func (c *Client) CreateScreeningCheck(ctx context.Context, req CheckRequest) apiclient.Response[CheckResult] {
	if violations := ValidateRequest(req); len(violations) > 0 {
		return apiclient.Invalid[CheckResult](CodeInvalidRequest,
			"Invalid screening request: "+strings.Join(violations, ", "))
	}
	return apiclient.Post[CheckResult](ctx, c.api, "create_check", "/checks", req)
}

// GetScreeningCheck fetches one check by id.
func (c *Client) GetScreeningCheck(ctx context.Context, checkID string) apiclient.Response[CheckResult] {
	if checkID == "" {
		return apiclient.Invalid[CheckResult](CodeInvalidCheckID, "Check ID is required and must be a string")
	}
	return apiclient.Get[CheckResult](ctx, c.api, "get_check", "/checks/"+url.PathEscape(checkID))
}

// ListScreeningChecks lists checks, optionally filtered by client. Zero values
// leave the filter or limit out of the query.
func (c *Client) ListScreeningChecks(ctx context.Context, clientID string, limit int) apiclient.Response[[]CheckResult] {
	query := url.Values{}
	if clientID != "" {
		query.Set("clientId", clientID)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return apiclient.Get[[]CheckResult](ctx, c.api, "list_checks", "/checks?"+query.Encode())
}

// ValidateRequest returns the violations in req, in field order.
func ValidateRequest(req CheckRequest) []string {
	var violations []string
	if req.ClientID == "" {
		violations = append(violations, "clientId is required and must be a string")
	}
	if req.Type != StandardCheck && req.Type != ExtensiveCheck {
		violations = append(violations, `type must be either "standard_screening_check" or "extensive_screening_check"`)
	}
	if req.Options != nil {
		switch req.Options.ScreeningNameSearchMode {
		case "", SearchFuzzy, SearchPrecise:
		default:
			violations = append(violations, `screeningNameSearchMode must be either "fuzzy" or "precise"`)
		}
	}
	return violations
}
