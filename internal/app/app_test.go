package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	testhelpers "github.com/polkiloo/orderdesk/internal/test"
	"github.com/polkiloo/orderdesk/internal/worker"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestDispatcher(sender *testhelpers.SenderStub) *worker.NotificationDispatcher {
	return worker.NewNotificationDispatcher(sender, "ops@example.com", 1, 4, time.Second, discardLogger())
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestNewNotificationDispatcherUsesConfig(t *testing.T) {
	sender := &testhelpers.SenderStub{}
	d := newNotificationDispatcher(dispatcherParams{
		Sender: sender,
		Config: &config.Config{OperatorEmail: "ops@example.com", NotifyWorkers: 1, NotifyQueueSize: 1, NotifyTimeout: time.Second},
		Logger: discardLogger(),
	})
	if d == nil {
		t.Fatal("expected dispatcher instance")
	}

	d.Start(context.Background())
	d.OrderCreated(context.Background(), model.Order{ID: "ORD-1"})
	deadline := time.After(time.Second)
	for len(sender.Snapshot()) == 0 {
		select {
		case <-deadline:
			t.Fatal("expected notification to be delivered")
		case <-time.After(5 * time.Millisecond):
		}
	}
	d.Stop()

	if got := sender.Snapshot()[0].Recipient; got != "ops@example.com" {
		t.Fatalf("expected configured recipient, got %q", got)
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	sender := &testhelpers.SenderStub{}
	dispatcher := newTestDispatcher(sender)
	cfg := &config.Config{ShutdownTimeout: 100 * time.Millisecond, PriceSource: model.PriceSourceCatalog}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Dispatcher: dispatcher,
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	startCtx, cancel := context.WithCancel(context.Background())
	if err := recorder.Start(startCtx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}
	cancel()

	if !dispatcher.OrderCreated(context.Background(), model.Order{ID: "ORD-1"}) {
		t.Fatal("expected notification to be queued")
	}
	deadline := time.After(time.Second)
	for len(sender.Snapshot()) == 0 {
		select {
		case <-deadline:
			t.Fatal("expected dispatcher to outlive the start context")
		case <-time.After(5 * time.Millisecond):
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = recorder.Stop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "bad addr"}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Dispatcher: newTestDispatcher(&testhelpers.SenderStub{}),
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if err := recorder.Start(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = recorder.Stop(context.Background())
}

func TestShutdownerStub(t *testing.T) {
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	if err := shutdowner.Shutdown(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-shutdowner.Called:
	default:
		t.Fatal("expected shutdown notification")
	}
}
