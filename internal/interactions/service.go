package interactions

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"complyhub/internal/audit"
	"complyhub/pkg/platform/middleware/metadata"
	"complyhub/pkg/requestcontext"
)

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

type RunRecorder interface {
	IncrementRun(node, branch string)
}

// Service runs registered nodes and records every execution.
type Service struct {
	registry       *Registry
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        RunRecorder
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m RunRecorder) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(registry *Registry, opts ...Option) *Service {
	s := &Service{registry: registry, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Descriptors lists every registered node.
func (s *Service) Descriptors() []Descriptor {
	return s.registry.All()
}

// Describe returns one node descriptor.
func (s *Service) Describe(name string) (Descriptor, error) {
	n, ok := s.registry.Get(name)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownNode, name)
	}
	return n.Descriptor, nil
}

// Run executes the named node. The only error is ErrUnknownNode; API failures
// are reported through the execution's error branch. Audit failures are
// logged and never fail the execution.
func (s *Service) Run(ctx context.Context, name string, attrs map[string]string) (Execution, error) {
	n, ok := s.registry.Get(name)
	if !ok {
		return Execution{}, fmt.Errorf("%w: %s", ErrUnknownNode, name)
	}

	start := time.Now()
	exec := n.Runner.Run(ctx, attrs)
	if !n.Descriptor.HasOutput(exec.Branch) {
		s.logger.WarnContext(ctx, "runner returned undeclared branch",
			"node", name,
			"branch", exec.Branch,
		)
	}

	if s.metrics != nil {
		s.metrics.IncrementRun(name, exec.Branch)
	}
	s.emitAudit(ctx, exec)

	attrsLog := []any{
		"request_id", requestcontext.RequestID(ctx),
		"client_ip", requestcontext.ClientIP(ctx),
		"node", name,
		"branch", exec.Branch,
		"status", exec.Status,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if exec.Error != nil {
		s.logger.WarnContext(ctx, "interaction failed", append(attrsLog, "code", exec.Error.Code)...)
	} else {
		s.logger.InfoContext(ctx, "interaction completed", attrsLog...)
	}
	return exec, nil
}

func (s *Service) emitAudit(ctx context.Context, exec Execution) {
	if s.auditPublisher == nil {
		return
	}
	event := audit.Event{
		Node:        exec.Node,
		Branch:      exec.Branch,
		Status:      exec.Status,
		SubjectHash: audit.HashSubject(exec.subject),
		RequestID:   requestcontext.RequestID(ctx),
		Caller:      metadata.Caller(requestcontext.UserAgent(ctx)),
		ClientIP:    requestcontext.ClientIP(ctx),
		Timestamp:   requestcontext.Now(ctx),
	}
	if exec.Error != nil {
		event.ErrorCode = exec.Error.Code
	}
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event",
			"node", exec.Node,
			"error", err,
		)
	}
}
