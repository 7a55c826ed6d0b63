package stream

import (
	"sync"
	"testing"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientWriterDeliversQueuedMessages(t *testing.T) {
	server, client := newTestConnPair(t)

	cw := newClientWriter(server, clockwork.NewRealClock())
	t.Cleanup(func() { cw.stop() })

	require.True(t, cw.trySend([]byte(`{"n":1}`)))
	require.True(t, cw.trySend([]byte(`{"n":2}`)))

	for _, want := range []string{`{"n":1}`, `{"n":2}`} {
		require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, msg, err := client.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, want, string(msg))
	}
}

func TestClientWriterTrySendReportsFullBuffer(t *testing.T) {
	server, client := newTestConnPair(t)
	t.Cleanup(func() { client.Close() })

	cw := newClientWriter(server, clockwork.NewRealClock())
	// Stop the run goroutine so nothing drains the buffer.
	cw.stop()

	full := false
	for range sendBufferSize + 1 {
		if !cw.trySend([]byte("x")) {
			full = true
			break
		}
	}
	assert.True(t, full, "trySend should report a full buffer")
}

func TestClientWriterGracefulStopSendsCloseFrame(t *testing.T) {
	server, client := newTestConnPair(t)

	cw := newClientWriter(server, clockwork.NewRealClock())
	cw.stopGraceful("Server shutting down")

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := client.ReadMessage()

	if closeErr, ok := err.(*ws.CloseError); ok {
		assert.Equal(t, ws.CloseNormalClosure, closeErr.Code)
		assert.Contains(t, closeErr.Text, "shutting down")
	} else {
		assert.Error(t, err, "connection should be closed")
	}
}

func TestClientWriterStopIdempotent(t *testing.T) {
	server, client := newTestConnPair(t)
	t.Cleanup(func() { client.Close() })

	cw := newClientWriter(server, clockwork.NewRealClock())

	cw.stop()
	cw.stop()
	cw.stop()
}

func TestClientWriterConcurrentStop(t *testing.T) {
	server, client := newTestConnPair(t)
	t.Cleanup(func() { client.Close() })

	cw := newClientWriter(server, clockwork.NewRealClock())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cw.stop()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("concurrent stop calls deadlocked")
	}
}
