// Package interpret is the boundary to the external natural-language
// interpretation service. The service receives a free-form prompt plus the
// current parameters and replies with a best-effort complete parameter set.
// Any failure leaves the caller's parameters untouched.
package interpret

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"snowglobe/internal/scene"
)

const defaultTimeout = 15 * time.Second

// Client talks to the interpretation service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a client for the service rooted at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

type request struct {
	Prompt  string       `json:"prompt"`
	Current scene.Params `json:"current"`
}

// response mirrors scene.Params with pointer fields so omitted values are
// distinguishable from zero values.
type response struct {
	ParticleCount    *int     `json:"particleCount"`
	MinSize          *float64 `json:"minSize"`
	MaxSize          *float64 `json:"maxSize"`
	FallSpeed        *float64 `json:"fallSpeed"`
	WindSpeed        *float64 `json:"windSpeed"`
	Opacity          *float64 `json:"opacity"`
	Color            *string  `json:"color"`
	MotionStretch    *float64 `json:"motionStretch"`
	SparkleIntensity *float64 `json:"sparkleIntensity"`
	TimeOfDay        *float64 `json:"timeOfDay"`
}

// Interpret asks the service to translate prompt into a parameter set.
// Omitted response fields are filled from scene.Defaults and the result is
// normalized. On any failure the current parameters are returned unchanged
// alongside the error, so callers can surface it without applying a partial
// update.
func (c *Client) Interpret(ctx context.Context, prompt string, current scene.Params) (scene.Params, error) {
	body, err := json.Marshal(request{Prompt: prompt, Current: current})
	if err != nil {
		return current, fmt.Errorf("encode interpret request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/interpret", bytes.NewReader(body))
	if err != nil {
		return current, fmt.Errorf("build interpret request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return current, fmt.Errorf("interpret request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return current, fmt.Errorf("interpret service returned status %d", resp.StatusCode)
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return current, fmt.Errorf("decode interpret response: %w", err)
	}
	return merge(parsed), nil
}

// merge overlays the service's answer onto the documented defaults.
func merge(r response) scene.Params {
	p := scene.Defaults()
	if r.ParticleCount != nil {
		p.ParticleCount = *r.ParticleCount
	}
	if r.MinSize != nil {
		p.MinSize = *r.MinSize
	}
	if r.MaxSize != nil {
		p.MaxSize = *r.MaxSize
	}
	if r.FallSpeed != nil {
		p.FallSpeed = *r.FallSpeed
	}
	if r.WindSpeed != nil {
		p.WindSpeed = *r.WindSpeed
	}
	if r.Opacity != nil {
		p.Opacity = *r.Opacity
	}
	if r.Color != nil {
		p.Color = *r.Color
	}
	if r.MotionStretch != nil {
		p.MotionStretch = *r.MotionStretch
	}
	if r.SparkleIntensity != nil {
		p.SparkleIntensity = *r.SparkleIntensity
	}
	if r.TimeOfDay != nil {
		p.TimeOfDay = *r.TimeOfDay
	}
	return p.Normalized()
}
