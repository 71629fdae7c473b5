package httptransport

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"complyhub/internal/interactions"
	"complyhub/internal/transport/http/mocks"
	"complyhub/pkg/platform/apiclient"
	"complyhub/pkg/platform/middleware/requestid"
	"complyhub/pkg/requestcontext"
	"complyhub/pkg/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockInteractionService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockInteractionService(ctrl)
	return NewRouter(NewHandler(svc, nil), prometheus.NewRegistry()), svc
}

func TestHealthAndMetrics(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	testutil.AssertStatusOK(t, rr)
	assert.NotEmpty(t, rr.Header().Get(requestid.Header))

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatusOK(t, rr)
}

func TestListInteractions(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().Descriptors().Return([]interactions.Descriptor{
		interactions.AMLScreeningDescriptor(),
		interactions.CompanyLookupDescriptor(),
	})

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/interactions"))

	testutil.AssertStatusOK(t, rr)
	got := testutil.UnmarshalResponse[[]interactions.Descriptor](t, rr)
	require.Len(t, *got, 2)
	assert.Equal(t, interactions.AMLScreeningNode, (*got)[0].Name)
}

func TestDescribeInteraction(t *testing.T) {
	t.Run("known node", func(t *testing.T) {
		router, svc := newTestRouter(t)
		svc.EXPECT().Describe(interactions.CompanyLookupNode).Return(interactions.CompanyLookupDescriptor(), nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/interactions/CompanyLookup"))

		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "workflow", "company-lookup/main.wf")
	})

	t.Run("unknown node", func(t *testing.T) {
		router, svc := newTestRouter(t)
		svc.EXPECT().Describe("DocumentCheck").Return(interactions.Descriptor{},
			fmt.Errorf("%w: DocumentCheck", interactions.ErrUnknownNode))

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/interactions/DocumentCheck"))

		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})
}

func TestRunInteraction(t *testing.T) {
	t.Run("execution is returned with the request id in context", func(t *testing.T) {
		router, svc := newTestRouter(t)
		svc.EXPECT().
			Run(gomock.Any(), interactions.CompanyLookupNode, map[string]string{"companyId": "c1"}).
			DoAndReturn(func(ctx context.Context, name string, _ map[string]string) (interactions.Execution, error) {
				assert.Equal(t, "req-7", requestcontext.RequestID(ctx))
				return interactions.Execution{
					Node: name, Branch: "not_found", Status: 404,
					Error: &apiclient.APIError{Code: "COMPANY_NOT_FOUND", Message: "Company not found"},
				}, nil
			})

		req := testutil.NewJSONRequest(t, http.MethodPost, "/interactions/CompanyLookup/run",
			RunRequest{Attributes: map[string]string{"companyId": "c1"}})
		req.Header.Set(requestid.Header, "req-7")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusOK(t, rr)
		assert.Equal(t, "req-7", rr.Header().Get(requestid.Header))
		got := testutil.UnmarshalResponse[interactions.Execution](t, rr)
		assert.Equal(t, "not_found", got.Branch)
		assert.Equal(t, 404, got.Status)
		assert.Equal(t, "COMPANY_NOT_FOUND", got.Error.Code)
	})

	t.Run("empty body runs with no attributes", func(t *testing.T) {
		router, svc := newTestRouter(t)
		svc.EXPECT().Run(gomock.Any(), interactions.AMLScreeningNode, map[string]string{}).
			Return(interactions.Execution{Node: interactions.AMLScreeningNode, Branch: "error", Status: 400}, nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/interactions/AMLScreening/run"))

		testutil.AssertStatusOK(t, rr)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, svc := newTestRouter(t)
		svc.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/interactions/CompanyLookup/run", `{"attributes":`))

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})

	t.Run("unknown node", func(t *testing.T) {
		router, svc := newTestRouter(t)
		svc.EXPECT().Run(gomock.Any(), "Nope", gomock.Any()).
			Return(interactions.Execution{}, fmt.Errorf("%w: Nope", interactions.ErrUnknownNode))

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/interactions/Nope/run", RunRequest{}))

		testutil.AssertStatus(t, rr, http.StatusNotFound)
	})
}
