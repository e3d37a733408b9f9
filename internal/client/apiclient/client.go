package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/zhulik/starmatch/internal/core"
	"github.com/zhulik/starmatch/pkg/starmatch"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

// errorKinds maps error kinds rendered by the server back to local sentinels.
var errorKinds = map[string]error{ //nolint:gochecknoglobals
	"invalid_input":     starmatch.ErrInvalidInput,
	"malformed_pattern": starmatch.ErrMalformedPattern,
	"unknown_algorithm": starmatch.ErrUnknownAlgorithm,
	"not_implemented":   starmatch.ErrNotImplemented,
	"empty_batch":       core.ErrEmptyBatch,
	"batch_too_large":   core.ErrBatchTooLarge,
	"body_too_large":    core.ErrBodyTooLarge,
}

type matchRequestBody struct {
	Text      string  `json:"text"`
	Pattern   string  `json:"pattern"`
	Algorithm *string `json:"algorithm,omitempty"`
}

type MatchResult struct {
	Index     int    `json:"index"`
	Found     bool   `json:"found"`
	Algorithm string `json:"algorithm"`
	Cached    bool   `json:"cached"`
}

type errorResponseBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type Client struct {
	Config     *core.ClientConfig
	httpClient *http.Client
}

func (c *Client) Init(_ context.Context) error {
	c.httpClient = &http.Client{}

	return nil
}

// Match asks the server to match pattern in text. An empty algorithm leaves
// the choice to the server's default.
func (c *Client) Match(ctx context.Context, text, pattern, algorithm string) (MatchResult, error) {
	body := matchRequestBody{Text: text, Pattern: pattern}
	if algorithm != "" {
		body.Algorithm = &algorithm
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return MatchResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Config.ServerURL+"/match", bytes.NewReader(jsonBody))
	if err != nil {
		return MatchResult{}, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doRequest(req, http.StatusOK)
	if err != nil {
		return MatchResult{}, err
	}

	defer resp.Body.Close()

	var result MatchResult

	err = json.NewDecoder(resp.Body).Decode(&result)

	return result, err
}

// doRequest performs the request and verifies the response status code matches
// expectedStatus. On success, it returns the *http.Response (caller must close body).
// Error responses rendered by the server are converted back to their sentinel errors.
func (c *Client) doRequest(req *http.Request, expectedStatus int) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == expectedStatus {
		return resp, nil
	}

	defer resp.Body.Close()

	var body errorResponseBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1024)).Decode(&body); err == nil {
		if sentinel, ok := errorKinds[body.Kind]; ok {
			return nil, fmt.Errorf("%w: %s", sentinel, body.Error)
		}
	}

	return nil, fmt.Errorf("%w: unexpected status %d", ErrUnexpectedStatus, resp.StatusCode)
}
