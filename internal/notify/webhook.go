// internal/notify/webhook.go
package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"printmon/internal/logging"
	"printmon/internal/printer"
)

// Notifier posts change sets to an HTTP webhook, one request per set.
// Stateless: each delivery stands alone, there is no queue and no retry.
type Notifier struct {
	url    string
	client *http.Client
	log    *logging.Logger
}

type Config struct {
	URL     string
	Timeout time.Duration
}

func New(cfg Config, log *logging.Logger) (*Notifier, error) {
	if cfg.URL == "" {
		return nil, errors.New("notify: webhook url required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	return &Notifier{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}, nil
}

// Wire format. Field names are the stable identifiers from the change
// model; descriptions are for humans and may change.
type payload struct {
	Printer string          `json:"printer"`
	At      time.Time       `json:"detected_at"`
	Changes []payloadChange `json:"changes"`
}

type payloadChange struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// Notify delivers one change set. Non-2xx responses are errors.
func (n *Notifier) Notify(cs printer.ChangeSet) error {
	p := payload{
		Printer: cs.Printer,
		At:      cs.At,
		Changes: make([]payloadChange, 0, len(cs.Changes)),
	}
	for _, c := range cs.Changes {
		p.Changes = append(p.Changes, payloadChange{
			Field:       c.Field().String(),
			Description: c.Description(),
		})
	}

	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("notify: encode: %w", err)
	}

	resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notify: webhook status %d", resp.StatusCode)
	}
	return nil
}

// Observe is a monitor sink: delivery failures are logged, never fatal to
// the watch loop. http.Client is safe for concurrent use, so this is too.
func (n *Notifier) Observe(cs printer.ChangeSet) {
	if err := n.Notify(cs); err != nil {
		n.log.Errorf("webhook delivery failed (printer=%s): %v", cs.Printer, err)
	}
}
