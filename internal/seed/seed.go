// Package seed loads sample to-do items into the deployed application.
package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/charmbracelet/log"
)

// Item is the payload the application's API accepts.
type Item struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Seeder posts sample items to the application endpoint.
type Seeder struct {
	client   *http.Client
	items    []string
	attempts uint
	delay    time.Duration
}

func NewSeeder(items []string) *Seeder {
	return &Seeder{
		client:   &http.Client{Timeout: 10 * time.Second},
		items:    items,
		attempts: 3,
		delay:    2 * time.Second,
	}
}

// Populate posts every configured item to url. Each post is retried a
// few times; the app may still be warming up right after deploy.
func (s *Seeder) Populate(ctx context.Context, url string) error {
	for _, text := range s.items {
		if err := s.post(ctx, url, Item{Text: text}); err != nil {
			return fmt.Errorf("failed to seed item %q: %w", text, err)
		}
		log.Info("seeded item", "text", text)
	}
	return nil
}

func (s *Seeder) post(ctx context.Context, url string, item Item) error {
	body, err := json.Marshal(item)
	if err != nil {
		return err
	}

	return retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := s.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode >= 400 {
				return fmt.Errorf("unexpected status %s", resp.Status)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(s.delay),
		retry.LastErrorOnly(true),
	)
}
