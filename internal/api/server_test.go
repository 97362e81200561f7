package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestRun_Endpoints(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var triggered atomic.Int32
	trigger := func(context.Context, time.Time) {
		triggered.Add(1)
	}

	addr := "127.0.0.1:18931"
	done := make(chan struct{})
	go func() {
		Run(ctx, addr, time.Second, trigger)
		close(done)
	}()

	base := "http://" + addr
	waitReady(t, base+"/health")

	resp, err := http.Get(base + "/")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "ok") {
		t.Errorf("GET / = %d %q", resp.StatusCode, body)
	}

	resp, err = http.Post(base+"/run_report", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("POST /run_report = %d", resp.StatusCode)
	}

	deadline := time.Now().Add(2 * time.Second)
	for triggered.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if triggered.Load() == 0 {
		t.Error("trigger was not invoked")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Error("server did not shut down")
	}
}

func waitReady(t *testing.T, url string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("server never became ready")
}
