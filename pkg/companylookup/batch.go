package companylookup

import (
	"context"

	"golang.org/x/sync/errgroup"

	"complyhub/pkg/platform/apiclient"
)

// CodeRequestFailed marks a lookup that produced neither data nor an error.
const CodeRequestFailed = "REQUEST_FAILED"

// Getter is the lookup surface LookupMany fans out over.
type Getter interface {
	GetCompanyDetails(ctx context.Context, companyID string) apiclient.Response[Company]
}

type Found struct {
	CompanyID string  `json:"companyId"`
	Data      Company `json:"data"`
}

type Miss struct {
	CompanyID string              `json:"companyId"`
	Error     *apiclient.APIError `json:"error"`
}

// BatchResult partitions lookups in input order.
type BatchResult struct {
	Successful []Found `json:"successful"`
	Failed     []Miss  `json:"failed"`
}

// LookupMany issues one lookup per id concurrently, without a concurrency
// limit, and waits for all of them. One failed lookup does not affect the rest.
func LookupMany(ctx context.Context, client Getter, companyIDs []string) BatchResult {
	results := make([]apiclient.Response[Company], len(companyIDs))

	var g errgroup.Group
	for i, id := range companyIDs {
		g.Go(func() error {
			results[i] = client.GetCompanyDetails(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	out := BatchResult{Successful: []Found{}, Failed: []Miss{}}
	for i, res := range results {
		id := companyIDs[i]
		switch {
		case res.OK():
			out.Successful = append(out.Successful, Found{CompanyID: id, Data: *res.Data})
		case res.Error != nil:
			out.Failed = append(out.Failed, Miss{CompanyID: id, Error: res.Error})
		default:
			out.Failed = append(out.Failed, Miss{CompanyID: id, Error: &apiclient.APIError{
				Code:    CodeRequestFailed,
				Message: "No data returned",
			}})
		}
	}
	return out
}
