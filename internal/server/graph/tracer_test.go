package graph

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gqlblog/internal/logging"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu         sync.Mutex
	operations []string
	fields     []string
}

func (o *recordingObserver) ObserveOperation(outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.operations = append(o.operations, outcome)
}

func (o *recordingObserver) ObserveField(typeName, field, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fields = append(o.fields, typeName+"."+field+":"+outcome)
}

func (o *recordingObserver) sortedFields() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := append([]string(nil), o.fields...)
	sort.Strings(out)
	return out
}

func TestTracer_ObservesResolvers(t *testing.T) {
	f := newFixture(t, false)
	f.createUser(t, "Ann", "a@b.com", "secret")
	obs := &recordingObserver{}
	s := f.build(t, f.users, logging.NewNopLogger(), graphql.Tracer(NewTracer(obs)))

	res := exec(t, s, nil, `{ users { id name posts { id } } __typename }`, nil)

	require.Empty(t, res.Errors)
	assert.Equal(t, []string{OutcomeOK}, obs.operations)
	assert.Equal(t, []string{"Query.users:ok", "User.posts:ok"}, obs.sortedFields())
}

func TestTracer_ObservesFailures(t *testing.T) {
	f := newFixture(t, false)
	obs := &recordingObserver{}
	logger, buf := newBufferLogger()
	s := f.build(t, failingList{f.users}, logger, graphql.Tracer(NewTracer(obs)))

	res := exec(t, s, nil, `query ListUsers { users { id } }`, nil)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, []string{OutcomeError}, obs.operations)
	assert.Equal(t, []string{"Query.users:error"}, obs.sortedFields())
	assert.Contains(t, buf.String(), "resolver failed")
	assert.Contains(t, buf.String(), "operation=ListUsers")

	exec(t, s, nil, `{ users { nope } }`, nil)
	assert.Equal(t, []string{OutcomeError, OutcomeInvalid}, obs.operations)
}

func TestTracer_SkipsTrivialFields(t *testing.T) {
	obs := &recordingObserver{}
	tr := NewTracer(obs)

	ctx, finish := tr.TraceField(context.Background(), "", "User", "email", true, nil)
	finish(nil)
	_, finish = tr.TraceField(ctx, "", "__Type", "fields", false, nil)
	finish(nil)

	assert.Empty(t, obs.fields)
}
