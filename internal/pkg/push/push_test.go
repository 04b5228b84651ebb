package push

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendChunksBatches(t *testing.T) {
	var mu sync.Mutex
	var batches [][]Message

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var batch []Message
		require.NoError(t, json.Unmarshal(body, &batch))

		mu.Lock()
		batches = append(batches, batch)
		mu.Unlock()

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	messages := make([]Message, 170)
	for i := range messages {
		messages[i] = Message{
			To:    fmt.Sprintf("ExponentPushToken[%d]", i),
			Title: "New item posted",
			Body:  "Water bottle at Clark Hall",
			Data:  map[string]string{"itemId": "abc123"},
		}
	}

	err := client.Send(context.Background(), messages)
	require.NoError(t, err)

	require.Len(t, batches, 3)
	require.Len(t, batches[0], 80)
	require.Len(t, batches[1], 80)
	require.Len(t, batches[2], 10)
	require.Equal(t, "ExponentPushToken[0]", batches[0][0].To)
	require.Equal(t, "abc123", batches[0][0].Data["itemId"])
}

func TestSendFailedBatchDoesNotBlockRest(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		// First batch fails, the rest succeed
		if n == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	messages := make([]Message, 161)
	for i := range messages {
		messages[i] = Message{To: fmt.Sprintf("tok-%d", i), Title: "t", Body: "b"}
	}

	err := client.Send(context.Background(), messages)
	require.Error(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 3, calls)
}

func TestSendEmpty(t *testing.T) {
	client := NewClient("http://127.0.0.1:1") // never dialed
	require.NoError(t, client.Send(context.Background(), nil))
}
