/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	contentTypeJSON10 = "application/x-amz-json-1.0"
	targetHeader      = "X-Amz-Target"
)

// RawResponse holds an undecoded wire reply from a hand-built request.
type RawResponse struct {
	StatusCode int
	Body       json.RawMessage
}

// Decode unmarshals the response body into v.
func (r *RawResponse) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// ManualRequest posts a hand-built JSON payload to a DynamoDB endpoint,
// bypassing the SDK entirely. target is the bare operation name, for
// example "DescribeEndpoints"; the DynamoDB_20120810 prefix is added
// here. Useful for probing wire-level behavior the SDK normalizes away.
func ManualRequest(ctx context.Context, httpClient *http.Client, endpoint, target string, payload any) (*RawResponse, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON10)
	req.Header.Set(targetHeader, "DynamoDB_20120810."+target)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &RawResponse{StatusCode: resp.StatusCode, Body: respBody}, nil
}
