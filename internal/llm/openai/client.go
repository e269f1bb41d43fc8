package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docuflow/idextract/internal/llm"
)

// Classify implements llm.Recognizer using a vision chat/completions call
// with a closed-set prompt.
func (c *Client) Classify(ctx context.Context, req llm.ClassifyRequest) (llm.Classification, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.classify.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"image_bytes", len(req.ImagePNG),
		"has_text_hint", req.TextHint != "",
	)

	schema := llm.BuildClassificationJSONSchema()
	body := c.chatBody(
		llm.BuildClassifySystemPrompt(),
		llm.BuildClassifyUserPrompt(req),
		req.ImagePNG,
		schema,
	)

	content, err := c.call(ctx, rid, body)
	if err != nil {
		c.logger.Error("llm.classify.failed",
			"req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return llm.Classification{}, err
	}

	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		c.logger.Error("llm.classify.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(content))
		return llm.Classification{}, fmt.Errorf("schema validation failed: %v: %w", err, llm.ErrMalformedResponse)
	}

	var out llm.Classification
	if err := json.Unmarshal(content, &out); err != nil {
		return llm.Classification{}, fmt.Errorf("unmarshal classification: %v: %w", err, llm.ErrMalformedResponse)
	}
	out.DocumentType = strings.ToLower(strings.TrimSpace(out.DocumentType))

	c.logger.Info("llm.classify.ok",
		"req_id", rid,
		"document_type", out.DocumentType,
		"confidence", out.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// Extract implements llm.Recognizer for a known document type. The response
// is sanitized and schema-validated before it is trusted; the raw content is
// returned for audit logging.
func (c *Client) Extract(ctx context.Context, req llm.ExtractRequest) (map[string]llm.ExtractedField, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"document_type", req.DocumentType,
		"fields", len(req.FieldNames),
		"image_bytes", len(req.ImagePNG),
	)

	schema := llm.BuildExtractionJSONSchema(req.FieldNames)
	body := c.chatBody(
		llm.BuildExtractSystemPrompt(req.DocumentType, req.FieldNames),
		llm.BuildExtractUserPrompt(req),
		req.ImagePNG,
		schema,
	)

	content, err := c.call(ctx, rid, body)
	if err != nil {
		c.logger.Error("llm.extract.failed",
			"req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, nil, err
	}

	// Validate strictly first; sanitize and re-validate on failure.
	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		cleaned, adjusted, sErr := llm.SanitizeExtractionJSON(content, c.logger)
		if sErr != nil {
			c.logger.Error("llm.extract.sanitize_failed", "req_id", rid, "error", sErr)
			return nil, content, fmt.Errorf("schema validation failed: %v: %w", err, llm.ErrMalformedResponse)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.logger.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(content))
			return nil, content, fmt.Errorf("schema validation failed: %v: %w", vErr, llm.ErrMalformedResponse)
		}
		c.logger.Warn("llm.extract.sanitize_applied", "req_id", rid, "adjustments", adjusted)
		content = cleaned
	}

	var out map[string]llm.ExtractedField
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, content, fmt.Errorf("unmarshal fields: %v: %w", err, llm.ErrMalformedResponse)
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"document_type", req.DocumentType,
		"returned_fields", len(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, content, nil
}

// chatBody builds a vision chat/completions request with the normalized image
// attached as a data URL and the schema appended as a system message.
func (c *Client) chatBody(system, user string, imagePNG []byte, schema map[string]any) map[string]any {
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(imagePNG)
	return map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": system},
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": user + "\n\nReturn ONLY JSON that matches the provided schema."},
					{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
				},
			},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}
}

// call performs one chat request with a single retry on transient failure.
// Context cancellation from the caller's deadline is never retried.
func (c *Client) call(ctx context.Context, rid string, body map[string]any) ([]byte, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"

	content, err := c.once(ctx, endpoint, body)
	if err == nil {
		return content, nil
	}
	if ctx.Err() != nil || !isTransient(err) {
		return nil, err
	}

	c.logger.Warn("llm.call.retry", "req_id", rid, "error", err)
	content, retryErr := c.once(ctx, endpoint, body)
	if retryErr != nil {
		return nil, fmt.Errorf("after retry: %w", retryErr)
	}
	return content, nil
}

func (c *Client) once(ctx context.Context, endpoint string, body map[string]any) ([]byte, error) {
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, fmt.Errorf("decode openai response: %v: %w", err, llm.ErrMalformedResponse)
	}
	if len(cc.Choices) == 0 {
		return nil, fmt.Errorf("no choices in openai response: %w", llm.ErrMalformedResponse)
	}
	return []byte(strings.TrimSpace(cc.Choices[0].Message.Content)), nil
}

func isTransient(err error) bool {
	if llm.IsTransient(err) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return false
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
