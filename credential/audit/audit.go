package audit

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/Hornan7/credential-manager/credential/log"
	"github.com/Hornan7/credential-manager/credential/tx"
	"github.com/Hornan7/credential-manager/credential/validator"
)

const instrumentationName = "github.com/Hornan7/credential-manager/credential/audit"

// Auditor decides transactions through the pure validator and emits
// telemetry about each verdict. It is safe for concurrent use.
type Auditor struct {
	logger   log.Logger
	tracer   trace.Tracer
	accepted metric.Int64Counter
	rejected metric.Int64Counter
}

// Option configures an Auditor.
type Option func(*options)

type options struct {
	logger         log.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithLogger sets the verdict logger. Defaults to a discarding logger.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithTracerProvider sets the tracer provider. Defaults to a no-op provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// WithMeterProvider sets the meter provider. Defaults to a no-op provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// New creates an Auditor. With no options every telemetry channel is a
// no-op, so the wrapper adds nothing observable beyond the verdict.
func New(opts ...Option) (*Auditor, error) {
	cfg := options{
		logger:         log.Nil{},
		tracerProvider: tracenoop.NewTracerProvider(),
		meterProvider:  metricnoop.NewMeterProvider(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	meter := cfg.meterProvider.Meter(instrumentationName)

	accepted, err := meter.Int64Counter(
		"credential.decisions.accepted",
		metric.WithDescription("Transactions accepted by the credential validator."),
	)
	if err != nil {
		return nil, err
	}

	rejected, err := meter.Int64Counter(
		"credential.decisions.rejected",
		metric.WithDescription("Transactions rejected by the credential validator."),
	)
	if err != nil {
		return nil, err
	}

	return &Auditor{
		logger:   cfg.logger,
		tracer:   cfg.tracerProvider.Tracer(instrumentationName),
		accepted: accepted,
		rejected: rejected,
	}, nil
}

// Decide runs the deterministic validation pass and reports the verdict.
// Telemetry never alters the decision: the returned verdict is exactly what
// validator.Decide produces for the same inputs.
func (a *Auditor) Decide(ctx context.Context, action validator.Action, prior *tx.LockedState, view *tx.Context) validator.Verdict {
	decisionID := uuid.NewString()

	ctx, span := a.tracer.Start(ctx, "credential.decide", trace.WithAttributes(
		attribute.String("credential.decision_id", decisionID),
		attribute.String("credential.action", action.Name()),
	))
	defer span.End()

	verdict := validator.Decide(action, prior, view)

	actionAttr := attribute.String("credential.action", action.Name())

	if verdict.Accepted {
		span.SetAttributes(attribute.Bool("credential.accepted", true))
		a.accepted.Add(ctx, 1, metric.WithAttributes(actionAttr))
		a.logger.Log(ctx, log.LevelInfo, "transaction accepted",
			log.String("decision_id", decisionID),
			log.String("action", action.Name()),
		)

		return verdict
	}

	span.SetAttributes(
		attribute.Bool("credential.accepted", false),
		attribute.String("credential.reason", string(verdict.Reason)),
	)
	span.SetStatus(codes.Error, string(verdict.Reason))
	a.rejected.Add(ctx, 1, metric.WithAttributes(
		actionAttr,
		attribute.String("credential.reason", string(verdict.Reason)),
	))
	a.logger.Log(ctx, log.LevelWarn, "transaction rejected",
		log.String("decision_id", decisionID),
		log.String("action", action.Name()),
		log.String("reason", string(verdict.Reason)),
		log.Err(verdict.Err),
	)

	return verdict
}
