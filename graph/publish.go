// Package graph publishes assembled narrative graphs to the backing store.
//
// The store consumes bulk ingest messages over NATS JetStream: one message
// per narrative, carrying the full Turtle blob scoped to a named graph. A
// nil client disables publishing so the engine can run standalone.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// IngestSubject is the stream subject for narrative graph ingestion.
const IngestSubject = "graph.ingest.narrative"

// IngestMessage is the bulk add/remove payload for one named graph.
type IngestMessage struct {
	GraphName string    `json:"graph_name"`
	Turtle    string    `json:"turtle"`
	Replace   bool      `json:"replace"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Publisher sends ingest messages to JetStream.
type Publisher struct {
	js jetstream.JetStream
}

// NewPublisher wraps a NATS connection. A nil connection returns a
// publisher whose Publish is a no-op (graceful degradation).
func NewPublisher(nc *nats.Conn) (*Publisher, error) {
	if nc == nil {
		return &Publisher{}, nil
	}
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("create jetstream context: %w", err)
	}
	return &Publisher{js: js}, nil
}

// Publish sends one narrative's Turtle blob. Replace clears the named graph
// before the add, making republication idempotent.
func (p *Publisher) Publish(ctx context.Context, graphName, turtle string, replace bool) error {
	if p == nil || p.js == nil {
		return nil
	}
	if graphName == "" {
		return fmt.Errorf("graph name is required")
	}

	msg := IngestMessage{
		GraphName: graphName,
		Turtle:    turtle,
		Replace:   replace,
		UpdatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal ingest message: %w", err)
	}
	if _, err := p.js.Publish(ctx, IngestSubject, data); err != nil {
		return fmt.Errorf("publish ingest message: %w", err)
	}
	return nil
}

// GraphName derives a stable named-graph identifier from a narrative title.
func GraphName(title string) string {
	name := strings.ToLower(strings.TrimSpace(title))
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			sb.WriteRune('-')
		}
	}
	cleaned := strings.Trim(sb.String(), "-")
	if cleaned == "" {
		cleaned = "narrative"
	}
	return "urn:narragraph:" + cleaned
}
