package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevTransport implements Transport for local development.
// It saves messages as HTML and JSON files to a directory instead of
// delivering them through an email provider.
type DevTransport struct {
	dir string
}

// NewDevTransport creates a development transport that saves messages to
// disk. The directory is created on the first send if it doesn't exist.
func NewDevTransport(dir string) *DevTransport {
	return &DevTransport{dir: dir}
}

// messageMetadata is the message data saved to JSON (excluding bodies).
type messageMetadata struct {
	MessageID string            `json:"message_id"`
	Timestamp string            `json:"timestamp"`
	To        string            `json:"to"`
	Subject   string            `json:"subject"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Send writes the message body and metadata to the configured directory and
// returns a generated message ID.
func (d *DevTransport) Send(ctx context.Context, msg Message) (Result, error) {
	if err := msg.Validate(); err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return Result{}, fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSend, err)
	}

	now := time.Now()
	messageID := uuid.New().String()
	baseFilename := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(msg.Subject))

	htmlPath := filepath.Join(d.dir, baseFilename+".html")
	if err := os.WriteFile(htmlPath, []byte(msg.HTML), 0644); err != nil {
		return Result{}, fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSend, err)
	}

	metadata := messageMetadata{
		MessageID: messageID,
		Timestamp: now.Format(time.RFC3339),
		To:        msg.To,
		Subject:   msg.Subject,
		Metadata:  msg.Metadata,
	}

	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSend, err)
	}

	jsonPath := filepath.Join(d.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return Result{}, fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSend, err)
	}

	return Result{MessageID: messageID}, nil
}

// sanitizeRegex matches characters that are not alphanumeric, dash, underscore, or dot
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a subject line into a safe filename.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}

	if s == "" {
		s = "message"
	}

	return strings.ToLower(s)
}
