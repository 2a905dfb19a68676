package client

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"sortbench/pkg/common"
	"sortbench/pkg/network"
	"sortbench/pkg/protocol"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func startCollector(t *testing.T, sink network.Sink) *network.Collector {
	t.Helper()
	c := network.NewCollector(sink, quietLogger())
	if err := c.Listen("127.0.0.1:0"); err != nil {
		t.Fatalf("listen: %v", err)
	}
	go c.Serve()
	t.Cleanup(func() { c.Close() })
	return c
}

func TestDialInvalidAddr(t *testing.T) {
	_, err := Dial("invalid:invalid:invalid", quietLogger())
	if err == nil {
		t.Fatal("expected error for invalid address")
	}
}

func TestStreamResultsToCollector(t *testing.T) {
	var mu sync.Mutex
	var got []common.Result
	c := startCollector(t, func(r common.Result) {
		mu.Lock()
		got = append(got, r)
		mu.Unlock()
	})

	rep, err := Dial(c.Addr().String(), quietLogger())
	if err != nil {
		t.Fatalf("dial collector: %v", err)
	}
	defer rep.Close()

	sent := []common.Result{
		{Size: 1000, MergeSortMs: 0.5, QuickSortMs: 0.25, MergeSortOK: true, QuickSortOK: true},
		{Size: 5000, MergeSortMs: 2.5, QuickSortMs: 1.25, MergeSortOK: true, QuickSortOK: false},
	}
	rep.Logf("[Bench] Generating dataset of %d users", 1000)
	for _, r := range sent {
		rep.Report(r)
	}

	// every frame is acknowledged before Report returns
	mu.Lock()
	defer mu.Unlock()
	if len(got) != len(sent) {
		t.Fatalf("collector received %d results, want %d", len(got), len(sent))
	}
	for i := range sent {
		if got[i] != sent[i] {
			t.Errorf("result %d: got %+v want %+v", i, got[i], sent[i])
		}
	}
}

func TestCollectorRejectsBadPayload(t *testing.T) {
	c := startCollector(t, nil)
	rep, err := Dial(c.Addr().String(), quietLogger())
	if err != nil {
		t.Fatalf("dial collector: %v", err)
	}
	defer rep.Close()

	err = rep.Send(protocol.OpResult, []byte{1, 2, 3})
	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected RejectedError, got %v", err)
	}

	// connection stays usable after a rejection
	if err := rep.Send(protocol.OpLog, []byte("still here")); err != nil {
		t.Fatalf("send after rejection: %v", err)
	}
}

func TestCollectorCloseDisconnectsClients(t *testing.T) {
	c := network.NewCollector(nil, quietLogger())
	if err := c.Listen("127.0.0.1:0"); err != nil {
		t.Fatalf("listen: %v", err)
	}
	served := make(chan error, 1)
	go func() { served <- c.Serve() }()

	rep, err := Dial(c.Addr().String(), quietLogger())
	if err != nil {
		t.Fatalf("dial collector: %v", err)
	}
	defer rep.Close()
	if err := rep.Send(protocol.OpLog, []byte("hello")); err != nil {
		t.Fatalf("send: %v", err)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("close collector: %v", err)
	}
	select {
	case err := <-served:
		if err != nil {
			t.Fatalf("serve returned %v after close", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after Close")
	}

	if err := rep.Send(protocol.OpLog, []byte("gone")); err == nil {
		t.Fatal("expected send to a closed collector to fail")
	}
}
