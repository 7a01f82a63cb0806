package thimble_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/danpasecinic/thimble"
)

type Config struct {
	Host string
	Port int
}

func NewConfig(host string, port int) *Config {
	return &Config{Host: host, Port: port}
}

type Recorder struct {
	Name   string
	Params []thimble.Param
}

func NewRecorder(name string, port int) *Recorder {
	return &Recorder{Name: name}
}

func (r *Recorder) ReceiveConstructionParams(params []thimble.Param) {
	r.Params = params
}

func TestNew(t *testing.T) {
	t.Parallel()

	f := thimble.New()
	if f == nil {
		t.Fatal("New() returned nil")
	}
}

func TestNewWithLogger(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	f := thimble.New(thimble.WithLogger(logger))
	if f == nil {
		t.Fatal("New() with logger returned nil")
	}
}

func TestBindConstructsRealInstance(t *testing.T) {
	t.Parallel()

	f := thimble.New()

	newConfig, err := thimble.Bind[*Config](f, NewConfig)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	cfg, err := newConfig("localhost", 8080)
	if err != nil {
		t.Fatalf("constructor failed: %v", err)
	}

	if cfg.Host != "localhost" {
		t.Errorf("expected host localhost, got %s", cfg.Host)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
}

func TestBindRejectsNonFunction(t *testing.T) {
	t.Parallel()

	f := thimble.New()

	_, err := thimble.Bind[*Config](f, 42)
	if !thimble.IsInvalidConstructor(err) {
		t.Fatalf("expected invalid constructor error, got %v", err)
	}

	_, err = thimble.Bind[*Config](f, nil)
	if !thimble.IsInvalidConstructor(err) {
		t.Fatalf("expected invalid constructor error for nil, got %v", err)
	}
}

func TestBindRejectsWrongReturnType(t *testing.T) {
	t.Parallel()

	f := thimble.New()

	_, err := thimble.Bind[*Config](f, func() int { return 0 })
	if !thimble.IsInvalidConstructor(err) {
		t.Fatalf("expected invalid constructor error, got %v", err)
	}

	_, err = thimble.Bind[*Config](f, func() (*Config, int) { return nil, 0 })
	if !thimble.IsInvalidConstructor(err) {
		t.Fatalf("expected invalid constructor error for bad second return, got %v", err)
	}
}

func TestMustBindPanicsOnInvalidConstructor(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected MustBind to panic")
		}
	}()

	thimble.MustBind[*Config](thimble.New(), "not a constructor")
}

func TestConstructorErrorPassesThrough(t *testing.T) {
	t.Parallel()

	f := thimble.New()
	sentinel := errors.New("connection refused")

	newConfig, err := thimble.Bind[*Config](f, func() (*Config, error) {
		return nil, sentinel
	})
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	_, err = newConfig()
	if err != sentinel {
		t.Fatalf("expected the constructor's own error back, got %v", err)
	}
}

func TestOneShotWinsOverPersistent(t *testing.T) {
	t.Parallel()

	f := thimble.New()
	queued := &Config{Host: "queued"}
	persistent := &Config{Host: "persistent"}

	thimble.QueueOnce(f, queued)
	thimble.SetPersistent(f, persistent)

	newConfig := thimble.MustBind[*Config](f, NewConfig)

	first, err := newConfig("real", 1)
	if err != nil {
		t.Fatalf("first resolution failed: %v", err)
	}
	if first != queued {
		t.Error("first resolution should serve the one-shot override")
	}

	second, err := newConfig("real", 2)
	if err != nil {
		t.Fatalf("second resolution failed: %v", err)
	}
	if second != persistent {
		t.Error("second resolution should serve the persistent override")
	}

	third, err := newConfig("real", 3)
	if err != nil {
		t.Fatalf("third resolution failed: %v", err)
	}
	if third != persistent {
		t.Error("third resolution should serve the persistent override again")
	}
}

func TestPrecedenceIndependentOfSetupOrder(t *testing.T) {
	t.Parallel()

	f := thimble.New()
	queued := &Config{Host: "queued"}
	persistent := &Config{Host: "persistent"}

	// Persistent first, one-shot second: the one-shot still wins.
	thimble.SetPersistent(f, persistent)
	thimble.QueueOnce(f, queued)

	newConfig := thimble.MustBind[*Config](f, NewConfig)

	got, err := newConfig("real", 1)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if got != queued {
		t.Error("one-shot override must win regardless of setup order")
	}
}

func TestEachInvocationResolvedIndependently(t *testing.T) {
	t.Parallel()

	f := thimble.New()
	newConfig := thimble.MustBind[*Config](f, NewConfig)

	real, err := newConfig("real", 1)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if real.Host != "real" {
		t.Errorf("expected real construction, got host %s", real.Host)
	}

	// Overrides registered after binding still apply to later invocations.
	stub := &Config{Host: "stub"}
	thimble.QueueOnce(f, stub)

	got, err := newConfig("real", 2)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if got != stub {
		t.Error("override registered after Bind should apply on the next call")
	}
}

func TestParamReceiverNotified(t *testing.T) {
	t.Parallel()

	f := thimble.New()
	newRecorder := thimble.MustBind[*Recorder](f, NewRecorder)

	rec, err := newRecorder("x", 8080)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}

	if len(rec.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(rec.Params))
	}

	if rec.Params[0].Position != 0 || rec.Params[0].TypeName != "string" || rec.Params[0].Value != "x" {
		t.Errorf("unexpected first param: %+v", rec.Params[0])
	}
	if rec.Params[1].Position != 1 || rec.Params[1].TypeName != "int" || rec.Params[1].Value != 8080 {
		t.Errorf("unexpected second param: %+v", rec.Params[1])
	}
}

func TestParamReceiverSkippedForOverrides(t *testing.T) {
	t.Parallel()

	f := thimble.New()
	stub := &Recorder{Name: "stub"}
	thimble.QueueOnce(f, stub)

	newRecorder := thimble.MustBind[*Recorder](f, NewRecorder)

	got, err := newRecorder("x", 8080)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if got != stub {
		t.Fatal("expected the queued stub")
	}
	if got.Params != nil {
		t.Error("overridden resolutions must not notify the receiver")
	}
}

func TestNonReceiverTypesConstructQuietly(t *testing.T) {
	t.Parallel()

	f := thimble.New()
	newConfig := thimble.MustBind[*Config](f, NewConfig)

	cfg, err := newConfig("localhost", 8080)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected a constructed instance")
	}
}

func TestNilArgumentMapsToZeroValue(t *testing.T) {
	t.Parallel()

	type Wrapper struct {
		Cfg *Config
	}

	f := thimble.New()
	newWrapper := thimble.MustBind[*Wrapper](f, func(cfg *Config) *Wrapper {
		return &Wrapper{Cfg: cfg}
	})

	w, err := newWrapper(nil)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if w.Cfg != nil {
		t.Error("expected nil argument to arrive as nil pointer")
	}
}
