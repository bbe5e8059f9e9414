package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/presentation"
)

// Editor is the settings page of one tab: it saves to the server first and
// only then shares the record with the other tabs.
type Editor struct {
	client *Client
	tab    *presentation.Tab
}

func NewEditor(client *Client, tab *presentation.Tab) *Editor {
	return &Editor{
		client: client,
		tab:    tab,
	}
}

// Save posts doc and, once the server accepts it, writes it to the tab's
// cache. A rejected save leaves the cache untouched.
func (e *Editor) Save(ctx context.Context, doc preference.Document) (*Ack, error) {
	ack, err := e.client.SaveSettings(ctx, doc)
	if err != nil {
		return nil, err
	}

	if err := e.tab.Save(ctx, doc); err != nil {
		return ack, err
	}
	return ack, nil
}

// Update fetches the current record, overwrites the given members and saves
// the whole record back.
func (e *Editor) Update(ctx context.Context, changes map[string]json.RawMessage) (*Ack, error) {
	current, err := e.client.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	fields, err := current.Fields()
	if err != nil {
		return nil, err
	}
	for name, value := range changes {
		fields[name] = value
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return e.Save(ctx, preference.Document(merged))
}
