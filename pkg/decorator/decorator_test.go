package decorator_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/architeacher/imagekit/pkg/decorator"
	"github.com/architeacher/imagekit/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

type (
	FetchThingQuery struct {
		ID string
	}

	RemoveThingCommand struct {
		ID string
	}

	fakeQueryHandler struct {
		result string
		err    error
	}

	fakeCommandHandler struct {
		err error
	}

	recordingMetrics struct {
		mu   sync.Mutex
		keys []string
	}
)

func (h fakeQueryHandler) Execute(_ context.Context, _ FetchThingQuery) (string, error) {
	return h.result, h.err
}

func (h fakeCommandHandler) Handle(_ context.Context, _ RemoveThingCommand) (bool, error) {
	return h.err == nil, h.err
}

func (m *recordingMetrics) Inc(_ context.Context, key string, _ any, _ ...attribute.KeyValue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.keys = append(m.keys, key)
}

func (m *recordingMetrics) Shutdown(_ context.Context) error { return nil }

func (m *recordingMetrics) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.keys...)
}

func TestApplyQueryDecorators(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	cases := []struct {
		name           string
		handler        fakeQueryHandler
		expectedErr    error
		expectedMetric string
		expectedStatus codes.Code
	}{
		{
			name:           "success",
			handler:        fakeQueryHandler{result: "thing"},
			expectedMetric: "queries.fetchthingquery.success",
			expectedStatus: codes.Ok,
		},
		{
			name:           "failure",
			handler:        fakeQueryHandler{err: errBoom},
			expectedErr:    errBoom,
			expectedMetric: "queries.fetchthingquery.failure",
			expectedStatus: codes.Error,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			recorder := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
			mc := &recordingMetrics{}
			log := logger.NewWithWriter(logger.LogLevelDebug, logger.JSONLoggingFormat, &buf)

			handler := decorator.ApplyQueryDecorators[FetchThingQuery, string](tc.handler, log, mc, tp)

			result, err := handler.Execute(context.Background(), FetchThingQuery{ID: "1"})

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				require.Contains(t, buf.String(), "failed to execute query")
			} else {
				require.NoError(t, err)
				require.Equal(t, "thing", result)
				require.Contains(t, buf.String(), "query executed successfully")
			}

			require.Contains(t, buf.String(), `"query":"FetchThingQuery"`)
			require.Equal(t, []string{"queries.fetchthingquery.duration", tc.expectedMetric}, mc.Keys())

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			require.Equal(t, "query.FetchThingQuery", spans[0].Name())
			require.Equal(t, tc.expectedStatus, spans[0].Status().Code)
		})
	}
}

func TestApplyCommandDecorators(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	var buf bytes.Buffer

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	mc := &recordingMetrics{}
	log := logger.NewWithWriter(logger.LogLevelDebug, logger.JSONLoggingFormat, &buf)

	handler := decorator.ApplyCommandDecorators[RemoveThingCommand, bool](fakeCommandHandler{err: errBoom}, log, mc, tp)

	ok, err := handler.Handle(context.Background(), RemoveThingCommand{ID: "1"})

	require.ErrorIs(t, err, errBoom)
	require.False(t, ok)
	require.Contains(t, buf.String(), `"command":"RemoveThingCommand"`)
	require.Contains(t, buf.String(), "failed to execute command")
	require.Equal(t, []string{"commands.removethingcommand.duration", "commands.removethingcommand.failure"}, mc.Keys())

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "command.RemoveThingCommand", spans[0].Name())
	require.Equal(t, codes.Error, spans[0].Status().Code)
	require.Len(t, spans[0].Events(), 1)
}

func TestApplyDecorators_NilCollaborators(t *testing.T) {
	t.Parallel()

	query := decorator.ApplyQueryDecorators[FetchThingQuery, string](fakeQueryHandler{result: "ok"}, logger.Nop(), nil, nil)

	result, err := query.Execute(context.Background(), FetchThingQuery{})
	require.NoError(t, err)
	require.Equal(t, "ok", result)

	command := decorator.ApplyCommandDecorators[RemoveThingCommand, bool](fakeCommandHandler{}, logger.Nop(), nil, otelNoop.NewTracerProvider())

	ok, err := command.Handle(context.Background(), RemoveThingCommand{})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLoggingDecorator_SuccessIsQuietAtInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := logger.NewWithWriter(logger.LogLevelInfo, logger.JSONLoggingFormat, &buf)
	handler := decorator.ApplyQueryDecorators[FetchThingQuery, string](fakeQueryHandler{result: "ok"}, log, nil, nil)

	_, err := handler.Execute(context.Background(), FetchThingQuery{})
	require.NoError(t, err)
	require.Empty(t, strings.TrimSpace(buf.String()))
}
