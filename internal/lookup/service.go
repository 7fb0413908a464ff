// Package lookup is the engine facade: classification, validation, single
// resolution and bulk orchestration behind one service type.
package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"consulta/internal/bulk"
	"consulta/internal/classifier"
	"consulta/internal/identifier"
	"consulta/internal/lookup/metrics"
	"consulta/internal/registry/pipeline"
	"consulta/internal/registry/providers"
	"consulta/internal/registry/records"
	"consulta/internal/validator"
	dErrors "consulta/pkg/domain-errors"
)

// Pipelines bundles the per-type provider chains the service resolves with.
type Pipelines struct {
	CNPJ   *pipeline.Pipeline[records.CNPJ]
	CEP    *pipeline.Pipeline[records.CEP]
	Email  *pipeline.Pipeline[records.Email]
	Domain *pipeline.Pipeline[records.Domain]
}

// Service implements the engine's external interface.
type Service struct {
	pipelines Pipelines
	logger    *slog.Logger
	metrics   *metrics.Metrics
	cooldown  time.Duration
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithCooldown overrides the per-run rate-limit cooldown duration.
func WithCooldown(d time.Duration) Option {
	return func(s *Service) {
		s.cooldown = d
	}
}

// New builds the service. Every networked type needs its pipeline.
func New(pipelines Pipelines, opts ...Option) (*Service, error) {
	if pipelines.CNPJ == nil || pipelines.CEP == nil || pipelines.Email == nil || pipelines.Domain == nil {
		return nil, fmt.Errorf("all four pipelines are required")
	}

	svc := &Service{
		pipelines: pipelines,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Classify infers the identifier type of a raw token. Pure, never fails.
func (s *Service) Classify(text string) identifier.Classification {
	return classifier.Classify(text)
}

// Validate runs the offline check for an already-typed identifier.
func (s *Service) Validate(t identifier.Type, normalized string) validator.Outcome {
	return validator.Validate(t, normalizeFor(t, normalized))
}

// Resolve runs validation and, where the type needs it, the provider chain
// for one identifier of a known type. Validation failures stop the lookup
// before any network call.
func (s *Service) Resolve(ctx context.Context, t identifier.Type, raw string) (records.Record, error) {
	class := identifier.Classification{
		Type:       t,
		Normalized: normalizeFor(t, raw),
		Confidence: identifier.ConfidenceCertain,
	}
	out := s.lookup(ctx, class, pipeline.NewCooldowns(s.cooldown))
	if out.Err != nil {
		return nil, out.Err
	}
	return out.Record, nil
}

// AutoDetect classifies a raw token and resolves it. On an ambiguous
// classification each candidate is tried in order; the first one that
// validates wins, otherwise the ambiguity is reported back.
func (s *Service) AutoDetect(ctx context.Context, text string) Outcome {
	return s.autoDetect(ctx, text, pipeline.NewCooldowns(s.cooldown))
}

// BulkLookup resolves every input concurrently, bounded by concurrency, and
// returns outcomes in input order. One input's failure never aborts the run.
func (s *Service) BulkLookup(ctx context.Context, texts []string, concurrency int) BulkResult {
	runID := uuid.NewString()
	cooldowns := pipeline.NewCooldowns(s.cooldown)
	start := time.Now()

	s.logger.Info("bulk run started", "run_id", runID, "inputs", len(texts), "concurrency", concurrency)

	outcomes := bulk.Run(ctx, texts, bulk.Options{Concurrency: concurrency}, func(ctx context.Context, text string) Outcome {
		return s.autoDetect(ctx, text, cooldowns)
	})

	s.logger.Info("bulk run finished", "run_id", runID, "inputs", len(texts), "elapsed", time.Since(start))

	return BulkResult{RunID: runID, Outcomes: outcomes}
}

func (s *Service) autoDetect(ctx context.Context, text string, cd *pipeline.Cooldowns) Outcome {
	class := s.Classify(text)

	if class.Type == identifier.TypeUnknown {
		out := Outcome{Query: strings.TrimSpace(text), Type: identifier.TypeUnknown, Status: pipeline.StatusRejected}
		s.metrics.ObserveLookup(identifier.TypeUnknown, string(pipeline.StatusRejected))
		return out.withError(dErrors.New(dErrors.CodeBadRequest, "unrecognized identifier shape"))
	}

	if class.Confidence == identifier.ConfidenceAmbiguous {
		for _, candidate := range class.Candidates {
			if validator.Validate(candidate, class.Normalized).Valid {
				resolved := class
				resolved.Type = candidate
				return s.lookup(ctx, resolved, cd)
			}
		}
		out := Outcome{
			Query:      class.Normalized,
			Type:       class.Type,
			Confidence: class.Confidence,
			Candidates: class.Candidates,
			Status:     pipeline.StatusRejected,
		}
		s.metrics.ObserveLookup(class.Type, string(pipeline.StatusRejected))
		return out.withError(dErrors.New(dErrors.CodeInvalidIdentifier,
			fmt.Sprintf("ambiguous between %v and no candidate validates", class.Candidates)))
	}

	return s.lookup(ctx, class, cd)
}

// lookup is the per-identifier state machine: validate, then resolve through
// the type's chain when one exists.
func (s *Service) lookup(ctx context.Context, class identifier.Classification, cd *pipeline.Cooldowns) Outcome {
	out := Outcome{
		Query:      class.Normalized,
		Type:       class.Type,
		Confidence: class.Confidence,
		Candidates: class.Candidates,
	}

	v := validator.Validate(class.Type, class.Normalized)
	out.Validation = &v
	if !v.Valid {
		out.Status = pipeline.StatusRejected
		s.metrics.ObserveLookup(class.Type, string(pipeline.StatusRejected))
		return out.withError(dErrors.New(dErrors.CodeInvalidIdentifier, string(v.Reason)))
	}

	if !class.Type.Networked() {
		out.Status = pipeline.StatusResolved
		out.Record = offlineRecord(class.Type, class.Normalized, v.Attributes)
		s.metrics.ObserveLookup(class.Type, string(pipeline.StatusResolved))
		return out
	}

	rec, err := s.resolveNetworked(ctx, class.Type, class.Normalized, cd)
	if err != nil {
		out.Status = pipeline.StatusExhausted
		s.metrics.ObserveLookup(class.Type, string(pipeline.StatusExhausted))
		return out.withError(toDomainError(err))
	}

	out.Status = pipeline.StatusResolved
	out.Record = rec
	s.metrics.ObserveLookup(class.Type, string(pipeline.StatusResolved))
	return out
}

func (s *Service) resolveNetworked(ctx context.Context, t identifier.Type, id string, cd *pipeline.Cooldowns) (records.Record, error) {
	switch t {
	case identifier.TypeCNPJ:
		return s.pipelines.CNPJ.Resolve(ctx, id, cd)
	case identifier.TypeCEP:
		return s.pipelines.CEP.Resolve(ctx, id, cd)
	case identifier.TypeEmail:
		return s.pipelines.Email.Resolve(ctx, id, cd)
	case identifier.TypeDomain:
		return s.pipelines.Domain.Resolve(ctx, id, cd)
	default:
		return nil, dErrors.New(dErrors.CodeInternal, "no pipeline for type")
	}
}

// toDomainError maps the provider error taxonomy onto coded errors for the
// transport layer.
func toDomainError(err error) error {
	switch providers.CategoryOf(err) {
	case providers.CategoryNotFound:
		return dErrors.Wrap(err, dErrors.CodeNotFound, "no source has a record for this identifier")
	case providers.CategoryTimeout:
		return dErrors.Wrap(err, dErrors.CodeTimeout, "all sources timed out")
	default:
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "all sources failed")
	}
}

// offlineRecord builds the canonical record for types that terminate at
// validation, from the validator's derived attributes.
func offlineRecord(t identifier.Type, normalized string, attrs map[string]string) records.Record {
	now := time.Now()
	switch t {
	case identifier.TypeCPF:
		return records.CPF{
			CPF:          normalized,
			Formatado:    attrs["cpf_formatado"],
			EstadoOrigem: attrs["estado_origem_provavel"],
			CheckedAt:    now,
		}
	case identifier.TypePhone:
		return records.Phone{
			Telefone:  normalized,
			DDD:       attrs["ddd"],
			Numero:    attrs["numero"],
			Regiao:    attrs["regiao"],
			Tipo:      attrs["tipo"],
			Formato:   attrs["formato"],
			CheckedAt: now,
		}
	case identifier.TypePlate:
		return records.Plate{
			Placa:          normalized,
			PlacaFormatada: attrs["placa_formatada"],
			Formato:        attrs["formato"],
			EstadoProvavel: attrs["estado_provavel"],
			CheckedAt:      now,
		}
	default:
		return nil
	}
}

// normalizeFor reduces raw text to the canonical form each validator and
// provider expects.
func normalizeFor(t identifier.Type, raw string) string {
	q := identifier.NewRawQuery(raw)
	switch t {
	case identifier.TypeCNPJ, identifier.TypeCPF, identifier.TypeCEP:
		return q.Digits()
	case identifier.TypePhone:
		digits := q.Digits()
		if (len(digits) == 12 || len(digits) == 13) && strings.HasPrefix(digits, "55") {
			digits = digits[2:]
		}
		return digits
	case identifier.TypePlate:
		return strings.ToUpper(q.Alnum())
	case identifier.TypeEmail, identifier.TypeDomain:
		return strings.ToLower(q.Original())
	default:
		return q.Original()
	}
}
