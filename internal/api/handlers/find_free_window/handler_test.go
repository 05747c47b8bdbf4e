package find_free_window

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingWindow/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingWindow/internal/domain"
	findFreeWindow "github.com/m04kA/SMC-MeetingWindow/internal/usecase/find_free_window"
	"github.com/m04kA/SMC-MeetingWindow/pkg/logger"
	"github.com/m04kA/SMC-MeetingWindow/pkg/types"
)

type fakeUseCase struct {
	resp *findFreeWindow.Response
	err  error
	got  *findFreeWindow.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *findFreeWindow.Request) (*findFreeWindow.Response, error) {
	f.got = req
	return f.resp, f.err
}

type recordingLogger struct {
	errors []string
}

func (l *recordingLogger) Info(string, ...interface{}) {}
func (l *recordingLogger) Warn(string, ...interface{}) {}
func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestHandler_PrintsWindow(t *testing.T) {
	uc := &fakeUseCase{resp: &findFreeWindow.Response{
		Result: domain.FullDay(time.Date(2017, 6, 6, 0, 0, 0, 0, time.UTC)),
		Start:  time.Date(2017, 6, 6, 8, 0, 0, 0, time.UTC),
		End:    time.Date(2017, 6, 6, 22, 0, 0, 0, time.UTC),
	}}
	var stdout, stderr bytes.Buffer

	req := ToUseCaseRequest(types.MustTimeString("08:00"), types.MustTimeString("22:00"), 7)
	code := NewHandler(uc, &stdout, &stderr, logger.NewNop()).Handle(context.Background(), req)

	assert.Equal(t, handlers.ExitOK, code)
	assert.Equal(t, "2017-06-06 08:00:00\n2017-06-06 22:00:00\n", stdout.String())
	assert.Empty(t, stderr.String())
	require.NotNil(t, uc.got)
	assert.Equal(t, 7, uc.got.HorizonDays)
}

func TestHandler_ErrorsMapToExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "input unavailable", err: findFreeWindow.ErrInputUnavailable, expected: handlers.ExitInputUnavailable},
		{name: "malformed record", err: fmt.Errorf("%w: line 3", findFreeWindow.ErrMalformedRecord), expected: handlers.ExitMalformedRecord},
		{name: "no free window", err: findFreeWindow.ErrNoFreeWindow, expected: handlers.ExitNoFreeWindow},
		{name: "invalid input", err: findFreeWindow.ErrInvalidInput, expected: handlers.ExitFailure},
		{name: "internal", err: findFreeWindow.ErrInternal, expected: handlers.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			handler := NewHandler(&fakeUseCase{err: tt.err}, &stdout, &stderr, logger.NewNop())

			code := handler.Handle(context.Background(), &findFreeWindow.Request{})

			assert.Equal(t, tt.expected, code)
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), "ошибка: ")
		})
	}
}

func TestHandler_OutputFailure(t *testing.T) {
	uc := &fakeUseCase{resp: &findFreeWindow.Response{
		Start: time.Date(2017, 6, 6, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2017, 6, 6, 9, 0, 0, 0, time.UTC),
	}}
	var stderr bytes.Buffer

	code := NewHandler(uc, failingWriter{}, &stderr, logger.NewNop()).Handle(context.Background(), &findFreeWindow.Request{})

	assert.Equal(t, handlers.ExitFailure, code)
	assert.Contains(t, stderr.String(), msgOutputFailed)
}

func TestHandler_ErrorMessageWriteFailureIsLogged(t *testing.T) {
	log := &recordingLogger{}
	var stdout bytes.Buffer
	handler := NewHandler(&fakeUseCase{err: findFreeWindow.ErrInputUnavailable}, &stdout, failingWriter{}, log)

	code := handler.Handle(context.Background(), &findFreeWindow.Request{})

	assert.Equal(t, handlers.ExitInputUnavailable, code)
	require.Len(t, log.errors, 2)
	assert.Contains(t, log.errors[1], msgInputUnavailable)
	assert.Contains(t, log.errors[1], "closed pipe")
}
