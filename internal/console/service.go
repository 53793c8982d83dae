package console

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/samvad-hq/storefront-console/internal/domain"
	"github.com/samvad-hq/storefront-console/internal/logger"
	"github.com/samvad-hq/storefront-console/pkg/apiclient"
	"github.com/samvad-hq/storefront-console/pkg/forms"
	"github.com/samvad-hq/storefront-console/pkg/operations"
	"github.com/samvad-hq/storefront-console/pkg/publishers"
)

// BaseURLField is the form key carrying the operator's API base URL.
const BaseURLField = "apiUrl"

const connectionProbePath = "/api/products"

// Service executes console operations against the remote API.
type Service struct {
	registry operations.Registry
	client   Caller
	endpoint *apiclient.Endpoint
	events   EventPublisher
	journal  Journal
	log      logger.Logger
	now      func() time.Time
}

// NewService wires the operation registry to an API caller. events and journal may be nil.
func NewService(reg operations.Registry, client Caller, endpoint *apiclient.Endpoint, events EventPublisher, log logger.Logger, journal Journal) *Service {
	if endpoint == nil {
		endpoint = apiclient.NewEndpoint("")
	}
	return &Service{
		registry: reg,
		client:   client,
		endpoint: endpoint,
		events:   events,
		journal:  journal,
		log:      logger.Ensure(log),
		now:      time.Now,
	}
}

// Registry returns the operations the service can execute.
func (s *Service) Registry() operations.Registry { return s.registry }

// BaseURL returns the current API base URL.
func (s *Service) BaseURL() string { return s.endpoint.URL() }

// Execute runs one operation with operator input from src.
//
// The base URL is re-read from src before anything else and captured for the
// whole action. Validation failures never reach the network. The returned
// error is non-nil only for unknown operations; every other failure is carried
// in the Result.
func (s *Service) Execute(ctx context.Context, opID string, src forms.Source) (Result, error) {
	if s == nil || s.registry == nil || s.client == nil {
		return Result{}, fmt.Errorf("console service is not initialized")
	}
	op, err := s.registry.Lookup(opID)
	if err != nil {
		return Result{}, err
	}

	started := s.now()
	baseURL := s.captureBaseURL(src)
	res := Result{Operation: op.ID, Region: op.Region(), BaseURL: baseURL}

	req, err := op.Build(src)
	if err != nil {
		res = s.fail(res, err)
		s.finish(ctx, op, res, started)
		return res, nil
	}
	res.Request = req

	var payload any
	if req.Payload != nil {
		payload = req.Payload
	}
	value, err := s.client.Call(ctx, baseURL, req.Method, req.Path, payload)
	if err != nil {
		res = s.fail(res, err)
	} else {
		res.Kind = KindOK
		res.Value = value
		res.View = op.Present(req, value)
	}

	s.finish(ctx, op, res, started)
	return res, nil
}

// ConnectionStatus is the outcome of a connectivity probe.
type ConnectionStatus struct {
	OK      bool
	Kind    Kind
	Status  int
	Text    string
	BaseURL string
}

// TestConnection lists products once and reports whether the API answered.
func (s *Service) TestConnection(ctx context.Context, src forms.Source) ConnectionStatus {
	baseURL := s.captureBaseURL(src)
	_, err := s.client.Call(ctx, baseURL, http.MethodGet, connectionProbePath, nil)

	st := ConnectionStatus{Kind: Classify(err), Status: statusOf(err), BaseURL: baseURL}
	switch st.Kind {
	case KindOK:
		st.OK = true
		st.Text = "✓ Connected"
	case KindRequest:
		st.Text = fmt.Sprintf("✗ Error: %d", st.Status)
	default:
		st.Text = "✗ Connection Failed"
	}

	s.log.InfoObj("connection probe", "connection_probe", map[string]any{
		"base_url": baseURL,
		"kind":     st.Kind,
		"status":   st.Status,
	})
	return st
}

// Recent returns the newest journal entries.
func (s *Service) Recent(limit int) ([]domain.Outcome, error) {
	if s.journal == nil {
		return nil, nil
	}
	return s.journal.Recent(limit)
}

// captureBaseURL stores the operator's base URL, when one was submitted, and returns the current value.
func (s *Service) captureBaseURL(src forms.Source) string {
	if src != nil && src.Has(BaseURLField) && strings.TrimSpace(src.Get(BaseURLField)) != "" {
		return s.endpoint.Set(src.Get(BaseURLField))
	}
	return s.endpoint.URL()
}

func (s *Service) fail(res Result, err error) Result {
	res.Kind = Classify(err)
	res.Err = err
	res.Status = statusOf(err)
	res.View = FailureView(err, res.BaseURL)
	return res
}

// finish logs, journals and publishes the outcome. Journal and publish errors are logged only.
func (s *Service) finish(ctx context.Context, op operations.Operation, res Result, started time.Time) {
	outcome := domain.Outcome{
		ID:         uuid.NewString(),
		Operation:  op.ID,
		Entity:     string(op.Entity),
		Method:     res.Request.Method,
		Path:       res.Request.Path,
		BaseURL:    res.BaseURL,
		Kind:       string(res.Kind),
		Status:     res.Status,
		StartedAt:  started.UTC(),
		DurationMs: s.now().Sub(started).Milliseconds(),
	}
	if res.Err != nil {
		outcome.Message = res.Err.Error()
	}

	if res.Kind == KindOK {
		s.log.InfoObj("operation completed", "operation_result", outcome)
	} else {
		s.log.WarnObj("operation failed", "operation_result", outcome)
	}

	if s.journal != nil {
		if err := s.journal.Record(outcome); err != nil {
			s.log.ErrorObj("journal record failed", "journal_error", map[string]any{
				"operation": op.ID,
				"error":     err.Error(),
			})
		}
	}

	if s.events != nil {
		if _, err := s.events.Publish(ctx, publishers.NewEvent(outcome)); err != nil {
			s.log.ErrorObj("publish failed", "publish_error", map[string]any{
				"operation": op.ID,
				"error":     err.Error(),
			})
		}
	}
}
