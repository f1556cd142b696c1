package app

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cloudcarver/text2image/pkg/announcer"
	"github.com/cloudcarver/text2image/pkg/app/closer"
	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/globalctx"
	"github.com/cloudcarver/text2image/pkg/processor"
	"github.com/cloudcarver/text2image/pkg/storage"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(call string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

func (l *callLog) get() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type fakeServer struct {
	log       *callLog
	globalCtx *globalctx.GlobalContext
	listening chan struct{}
}

func (s *fakeServer) Listen() error {
	s.log.add("listen")
	close(s.listening)
	<-s.globalCtx.Context().Done()
	return nil
}

func (s *fakeServer) Shutdown(context.Context) error {
	s.log.add("server.shutdown")
	return nil
}

type fakeComponent struct {
	name string
	log  *callLog
}

func (c *fakeComponent) Start() {
	c.log.add(c.name + ".start")
}

func (c *fakeComponent) Shutdown(context.Context) error {
	c.log.add(c.name + ".shutdown")
	return nil
}

func (c *fakeComponent) Stop(context.Context) error {
	c.log.add(c.name + ".stop")
	return nil
}

func TestApplicationLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)

	d, err := processor.NewDescriptor(&config.Config{})
	require.NoError(t, err)

	var (
		calls     = &callLog{}
		globalCtx = globalctx.NewWithContext(context.Background())
		release   = make(chan struct{})
		srv       = &fakeServer{log: calls, globalCtx: globalCtx, listening: make(chan struct{})}
	)

	mockAnnouncer := announcer.NewMockAnnouncerInterface(ctrl)
	// announcement is still running while the server is already listening
	mockAnnouncer.EXPECT().AnnounceAll(gomock.Any(), d).DoAndReturn(func(context.Context, any) []announcer.Attempt {
		<-release
		calls.add("announced")
		return []announcer.Attempt{{EngineURL: "http://engine", Attempts: 1, Succeeded: true}}
	})
	mockAnnouncer.EXPECT().GracefulShutdown(gomock.Any(), d).Do(func(context.Context, any) {
		calls.add("deregister")
	}).Times(1)

	a := newApplication(
		zap.NewNop(),
		globalCtx,
		d,
		srv,
		&fakeComponent{name: "metrics", log: calls},
		&fakeComponent{name: "janitor", log: calls},
		mockAnnouncer,
		storage.NewMemoryStore(),
		closer.NewCloserManager(),
	)

	done := make(chan error, 1)
	go func() { done <- a.Start() }()

	select {
	case <-srv.listening:
	case <-time.After(time.Second):
		t.Fatal("server did not start while announcing")
	}
	close(release)
	<-a.announced

	a.Close()
	require.NoError(t, <-done)

	got := calls.get()
	require.Contains(t, got, "janitor.start")

	var shutdown []string
	for _, call := range got {
		if call == "deregister" || strings.HasSuffix(call, ".shutdown") || strings.HasSuffix(call, ".stop") {
			shutdown = append(shutdown, call)
		}
	}
	require.Equal(t, []string{"deregister", "server.shutdown", "metrics.shutdown", "janitor.stop"}, shutdown)
}
