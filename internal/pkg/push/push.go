package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/xyz-asif/lostfound/internal/pkg/logger"
)

// ChunkSize bounds a single gateway request. The Expo push endpoint caps
// request payloads, so larger recipient sets are split into sequential batches.
const ChunkSize = 80

// Message is one push submission in the gateway's wire format.
type Message struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Client posts message batches to an Expo-compatible push gateway.
// Delivery is best-effort: no receipts are read and a failed batch does not
// stop the remaining batches.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(gatewayURL string) *Client {
	return &Client{
		url: gatewayURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send submits messages in chunks of ChunkSize. It returns the first batch
// error encountered, after all batches have been attempted; callers on the
// notification path log it and move on.
func (c *Client) Send(ctx context.Context, messages []Message) error {
	var firstErr error

	for i := 0; i < len(messages); i += ChunkSize {
		end := i + ChunkSize
		if end > len(messages) {
			end = len(messages)
		}

		if err := c.sendBatch(ctx, messages[i:end]); err != nil {
			logger.Warn("push: batch %d-%d failed: %v", i, end, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

func (c *Client) sendBatch(ctx context.Context, batch []Message) error {
	payload, err := json.Marshal(batch)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("push gateway returned status %d", resp.StatusCode)
	}

	return nil
}
