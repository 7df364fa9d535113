package graph

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/gqlblog/internal/logging"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/graph-gophers/graphql-go/introspection"
	"github.com/graph-gophers/graphql-go/trace/tracer"
)

const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeInvalid = "invalid"
)

// Observer is satisfied by *metrics.Metrics.
type Observer interface {
	ObserveOperation(outcome string, elapsed time.Duration)
	ObserveField(typeName, field, outcome string, elapsed time.Duration)
}

// Tracer feeds operation and resolver timings to an Observer and tags the
// execution context with the operation name for logging. Trivial fields
// (plain getters) and introspection are not observed.
type Tracer struct {
	obs Observer
}

var (
	_ tracer.Tracer           = (*Tracer)(nil)
	_ tracer.ValidationTracer = (*Tracer)(nil)
)

func NewTracer(obs Observer) *Tracer {
	return &Tracer{obs: obs}
}

func (t *Tracer) TraceQuery(ctx context.Context, _ string, operationName string, _ map[string]interface{}, _ map[string]*introspection.Type) (context.Context, tracer.QueryFinishFunc) {
	if operationName != "" {
		ctx = logging.WithAttrs(ctx, "operation", operationName)
	}
	start := time.Now()
	return ctx, func(errs []*gqlerrors.QueryError) {
		t.obs.ObserveOperation(outcome(len(errs) > 0), time.Since(start))
	}
}

func (t *Tracer) TraceField(ctx context.Context, _ string, typeName, fieldName string, trivial bool, _ map[string]interface{}) (context.Context, tracer.FieldFinishFunc) {
	if trivial || strings.HasPrefix(typeName, "__") || strings.HasPrefix(fieldName, "__") {
		return ctx, func(*gqlerrors.QueryError) {}
	}
	start := time.Now()
	return ctx, func(err *gqlerrors.QueryError) {
		t.obs.ObserveField(typeName, fieldName, outcome(err != nil), time.Since(start))
	}
}

// TraceValidation counts documents rejected before execution.
func (t *Tracer) TraceValidation(context.Context) tracer.ValidationFinishFunc {
	start := time.Now()
	return func(errs []*gqlerrors.QueryError) {
		if len(errs) > 0 {
			t.obs.ObserveOperation(OutcomeInvalid, time.Since(start))
		}
	}
}

func outcome(failed bool) string {
	if failed {
		return OutcomeError
	}
	return OutcomeOK
}
