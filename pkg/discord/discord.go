package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GetWebhookURL returns the Discord webhook URL.
func (d *Discord) GetWebhookURL() string {
	return fmt.Sprintf("%s/%s/%s", d.config.BaseURL, d.webhook.ID, d.webhook.Token)
}

// ReportBug posts message wrapped in a code block. Messages longer than
// MaxMessageLength are truncated.
func (d *Discord) ReportBug(ctx context.Context, message string) error {
	content := "```\n" + message + "\n```"
	if len(content) > MaxMessageLength {
		content = content[:MaxMessageLength-7] + "...\n```"
	}
	return d.sendWithRetry(ctx, &WebhookPayload{
		Content:  content,
		Username: d.config.Username,
	})
}

// Close closes idle connections in the HTTP client.
func (d *Discord) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *Discord) sendWithRetry(ctx context.Context, payload *WebhookPayload) error {
	var lastErr error

	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}

		err := d.sendRequest(ctx, payload)
		if err == nil {
			return nil
		}

		lastErr = err
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.sendWithRetry: attempt %d failed: %v", attempt+1, err)
		}
	}

	return fmt.Errorf("failed after %d attempts, last error: %w", d.config.RetryCount+1, lastErr)
}

func (d *Discord) sendRequest(ctx context.Context, payload *WebhookPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.GetWebhookURL(), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("discord webhook returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
