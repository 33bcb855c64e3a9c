package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bokol-ooch/temporizadores/pkg/model"
	"github.com/bokol-ooch/temporizadores/pkg/storage"
	"github.com/bokol-ooch/temporizadores/pkg/storage/memory"
	"github.com/bokol-ooch/temporizadores/pkg/timestamp"
	"github.com/labstack/echo"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu      sync.Mutex
	records []model.Record
	err     error
}

func (p *recordingPublisher) Publish(m *model.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.records = append(p.records, *m)
	return nil
}

func (p *recordingPublisher) published() []model.Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.Record(nil), p.records...)
}

type testEnv struct {
	e         *echo.Echo
	store     storage.Interface
	publisher *recordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	loc, err := timestamp.LoadLocation(timestamp.DefaultDisplayTimezone)
	require.NoError(t, err)

	env := &testEnv{
		e:         echo.New(),
		store:     memory.NewStore(),
		publisher: &recordingPublisher{},
	}
	NewHandler(env.store, env.publisher, nil, loc).RegisterRoutes(env.e)

	return env
}

func (env *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) seed(t *testing.T, name, shelf string, start time.Time, d time.Duration) *model.Record {
	t.Helper()
	m := &model.Record{
		Name:           name,
		Shelf:          shelf,
		StartTime:      start,
		EndTime:        start.Add(d),
		ElapsedSeconds: int64(d / time.Second),
	}
	require.NoError(t, env.store.Records().Create(m))
	return m
}

var errBrokerDown = errors.New("broker down")
