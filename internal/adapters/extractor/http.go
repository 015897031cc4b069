// Package extractor provides document text extraction adapters.
// Implements ports.DocumentExtractor by calling the PDF extraction side-car
// service over HTTP.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ServiceExtractor extracts text from PDF bytes via the extraction service.
type ServiceExtractor struct {
	serviceURL string
	client     *http.Client
}

// NewServiceExtractor creates an extractor backed by the side-car service.
func NewServiceExtractor(serviceURL string) *ServiceExtractor {
	if serviceURL == "" {
		serviceURL = "http://localhost:8081"
	}
	return &ServiceExtractor{
		serviceURL: serviceURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// extractResponse is the extraction service response format.
type extractResponse struct {
	Text  string `json:"text"`
	Pages int    `json:"pages"`
	Error string `json:"error,omitempty"`
}

// Extract sends the document bytes to the service and returns the
// concatenated page text.
func (e *ServiceExtractor) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", e.serviceURL+"/extract", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-Filename", filename)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling extraction service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extraction service returned status %d", resp.StatusCode)
	}

	var result extractResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if result.Error != "" {
		return "", fmt.Errorf("extraction error: %s", result.Error)
	}

	return result.Text, nil
}

// SupportedFormats returns formats this extractor handles.
func (e *ServiceExtractor) SupportedFormats() []string {
	return []string{"pdf"}
}

// IsServiceHealthy checks if the extraction service is reachable.
func (e *ServiceExtractor) IsServiceHealthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, "GET", e.serviceURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
