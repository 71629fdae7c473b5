package interactions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complyhub/internal/audit"
	"complyhub/pkg/platform/apiclient"
	"complyhub/pkg/platform/metrics"
	"complyhub/pkg/requestcontext"
	testhelpers "complyhub/pkg/testutil"
)

type runnerFunc func(ctx context.Context, attrs map[string]string) Execution

func (f runnerFunc) Run(ctx context.Context, attrs map[string]string) Execution {
	return f(ctx, attrs)
}

type failingPublisher struct{}

func (failingPublisher) Emit(context.Context, audit.Event) error {
	return errors.New("broker down")
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	require.NoError(t, reg.Register(Node{
		Descriptor: CompanyLookupDescriptor(),
		Runner: runnerFunc(func(_ context.Context, attrs map[string]string) Execution {
			if attrs["companyId"] == "missing" {
				return Execution{Node: CompanyLookupNode, Branch: "not_found", Status: 404,
					Error: &apiclient.APIError{Code: "COMPANY_NOT_FOUND"}, subject: attrs["companyId"]}
			}
			return Execution{Node: CompanyLookupNode, Branch: "success", Status: 200, subject: attrs["companyId"]}
		}),
	}))
	return reg
}

func TestRegistry(t *testing.T) {
	reg := newTestRegistry(t)

	err := reg.Register(Node{Descriptor: CompanyLookupDescriptor(), Runner: runnerFunc(nil)})
	assert.ErrorIs(t, err, ErrDuplicateNode)
	assert.Error(t, reg.Register(Node{Descriptor: Descriptor{Name: "NoRunner"}}))
	assert.Error(t, reg.Register(Node{Runner: runnerFunc(nil)}))

	require.NoError(t, reg.Register(Node{Descriptor: AMLScreeningDescriptor(), Runner: runnerFunc(nil)}))
	names := []string{}
	for _, d := range reg.All() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{AMLScreeningNode, CompanyLookupNode}, names)
}

func TestDescriptors(t *testing.T) {
	company := CompanyLookupDescriptor()
	assert.Equal(t, "company-lookup/main.wf", company.Workflow)
	assert.Equal(t, "company-lookup", company.InitialAttributes["uri"])
	assert.True(t, company.HasOutput("not_found"))
	assert.False(t, company.HasOutput("clear"))

	aml := AMLScreeningDescriptor()
	assert.Equal(t, "aml-screening/main.wf", aml.Workflow)
	for _, branch := range []string{"clear", "attention", "not_processed", "error"} {
		assert.True(t, aml.HasOutput(branch), branch)
	}
	poa := ProofOfAddressDescriptor()
	assert.Equal(t, "proof-of-address-check/main.wf", poa.Workflow)
	for _, branch := range []string{"success", "review", "failed", "error"} {
		assert.True(t, poa.HasOutput(branch), branch)
	}
	assert.Equal(t, "attributes.documentId", poa.Settings[1].Path)

	require.Len(t, aml.Settings, 3)
	assert.Equal(t, "attributes.screeningType", aml.Settings[1].Path)
	assert.Len(t, aml.Settings[1].Choices, 2)
}

func TestServiceRun(t *testing.T) {
	testhelpers.Given(t, "a service with audit and metrics", func(t *testing.T) {
		publisher := audit.NewMemoryPublisher()
		m := metrics.New(prometheus.NewRegistry())
		svc := NewService(newTestRegistry(t), WithAuditPublisher(publisher), WithMetrics(m))

		testhelpers.When(t, "a node fails with a known code", func(t *testing.T) {
			ctx := requestcontext.WithRequestID(context.Background(), "req-1")
			exec, err := svc.Run(ctx, CompanyLookupNode, map[string]string{"companyId": "missing"})
			require.NoError(t, err)

			testhelpers.Then(t, "the branch and audit event reflect the failure", func(t *testing.T) {
				assert.Equal(t, "not_found", exec.Branch)
				events := publisher.ListByNode(CompanyLookupNode)
				require.Len(t, events, 1)
				assert.Equal(t, "COMPANY_NOT_FOUND", events[0].ErrorCode)
				assert.Equal(t, "req-1", events[0].RequestID)
				assert.Equal(t, audit.HashSubject("missing"), events[0].SubjectHash)
				assert.Equal(t, 1.0, testutil.ToFloat64(m.InteractionRuns.WithLabelValues(CompanyLookupNode, "not_found")))
			})
		})

		testhelpers.When(t, "the request carries caller metadata", func(t *testing.T) {
			publisher.Clear()
			at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
			req := httptest.NewRequest(http.MethodPost, "/interactions/CompanyLookup/run", nil)
			req = testhelpers.WithRequestID(req, "req-2")
			req = testhelpers.WithClientMetadata(req, "203.0.113.5",
				"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
			ctx := requestcontext.WithTime(req.Context(), at)

			_, err := svc.Run(ctx, CompanyLookupNode, map[string]string{"companyId": "c1"})
			require.NoError(t, err)

			testhelpers.Then(t, "the audit event records who called and when", func(t *testing.T) {
				events := publisher.List()
				require.Len(t, events, 1)
				assert.Equal(t, "req-2", events[0].RequestID)
				assert.Contains(t, events[0].Caller, "Chrome/")
				assert.Equal(t, "203.0.113.5", events[0].ClientIP)
				assert.Equal(t, at, events[0].Timestamp)
			})
		})

		testhelpers.When(t, "the node is unknown", func(t *testing.T) {
			_, err := svc.Run(context.Background(), "DocumentCheck", nil)

			testhelpers.Then(t, "ErrUnknownNode is returned", func(t *testing.T) {
				assert.ErrorIs(t, err, ErrUnknownNode)
			})
		})
	})

	testhelpers.Given(t, "an audit sink that fails", func(t *testing.T) {
		svc := NewService(newTestRegistry(t), WithAuditPublisher(failingPublisher{}))

		testhelpers.Then(t, "the execution still succeeds", func(t *testing.T) {
			exec, err := svc.Run(context.Background(), CompanyLookupNode, map[string]string{"companyId": "c1"})
			require.NoError(t, err)
			assert.Equal(t, "success", exec.Branch)
		})
	})
}

func TestServiceDescribe(t *testing.T) {
	svc := NewService(newTestRegistry(t))

	d, err := svc.Describe(CompanyLookupNode)
	require.NoError(t, err)
	assert.Equal(t, "Company Lookup", d.DisplayName)

	_, err = svc.Describe("nope")
	assert.ErrorIs(t, err, ErrUnknownNode)
	assert.Len(t, svc.Descriptors(), 1)
}
