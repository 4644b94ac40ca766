// Package gemini implements the two external collaborators of the analysis
// core: the spreadsheet ingestion adapter and the realtime market data
// fetcher. Both drive the Gemini generateContent REST API and hand the core
// plain record shapes; prompt and parsing details stay inside this package.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	xhttp "BondRV/pkg/http"
)

// Client is a minimal Gemini REST client.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	httpc   *xhttp.Client
}

// NewClient builds a client for the given API key and model.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpc:   xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

type generateRequest struct {
	Contents         []content `json:"contents"`
	GenerationConfig genConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type genConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateJSON sends the prompt (plus an optional inline attachment) and
// unmarshals the model's JSON reply into dest.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, attachment *inlineData, dest interface{}) error {
	parts := []part{{Text: prompt}}
	if attachment != nil {
		parts = append(parts, part{InlineData: attachment})
	}

	req := generateRequest{
		Contents:         []content{{Parts: parts}},
		GenerationConfig: genConfig{ResponseMimeType: "application/json"},
	}

	var resp generateResponse
	err := c.httpc.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodPost,
		URL:         fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model),
		QueryParams: map[string]string{"key": c.apiKey},
		Body:        req,
	}, &resp)
	if err != nil {
		return fmt.Errorf("gemini request: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("gemini response contains no candidates")
	}

	text := stripFences(resp.Candidates[0].Content.Parts[0].Text)
	if err := json.Unmarshal([]byte(text), dest); err != nil {
		return fmt.Errorf("parse gemini json: %w", err)
	}
	return nil
}

// stripFences removes markdown code fences the model sometimes wraps JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
