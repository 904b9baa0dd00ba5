// Package recordstore is the client for the hosted record store holding all
// directory data. Every table is reached through the same five calls; the
// store answers with a success envelope and, for writes, per-record results.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"directory/backend/foundation/web"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Record is a single row of a table, keyed by the store's field names.
type Record map[string]interface{}

type Config struct {
	BaseURL   string
	ProjectID string
	APIKey    string
}

type Client struct {
	cfg    Config
	logger *zap.Logger

	initOnce sync.Once
	http     *http.Client
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		cfg:    cfg,
		logger: logger,
	}
}

// envelope is the store's response wrapper. data carries the payload of
// reads, results the per-record outcome of writes.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Results []recordResult  `json:"results"`
}

type recordResult struct {
	Success bool              `json:"success"`
	Data    Record            `json:"data"`
	Errors  map[string]string `json:"errors"`
	Message string            `json:"message"`
}

// FetchRecords returns every record of the table, limited to the given
// store field names.
func (c *Client) FetchRecords(ctx context.Context, table string, fields []string) ([]Record, error) {
	env, err := c.call(ctx, http.MethodPost, c.tablePath(table)+"/query", map[string]interface{}{
		"fields": fields,
	})
	if err != nil {
		return nil, err
	}

	var records []Record
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &records); err != nil {
			return nil, c.fail(table, "fetch", errors.Wrap(err, "decoding records"), http.StatusBadGateway)
		}
	}

	return records, nil
}

// GetRecordByID returns one record or a not found request error.
func (c *Client) GetRecordByID(ctx context.Context, table string, id int, fields []string) (Record, error) {
	path := fmt.Sprintf("%s/%d", c.tablePath(table), id)
	if len(fields) > 0 {
		path += "?fields=" + strings.Join(fields, ",")
	}

	env, err := c.call(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var record Record
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &record); err != nil {
			return nil, c.fail(table, "get", errors.Wrap(err, "decoding record"), http.StatusBadGateway)
		}
	}
	if record == nil {
		return nil, web.NewRequestError(errors.New("record not found"), http.StatusBadRequest)
	}

	return record, nil
}

// CreateRecords inserts the given records and returns them as stored,
// ids included. A failed per-record result turns into an error.
func (c *Client) CreateRecords(ctx context.Context, table string, records []Record) ([]Record, error) {
	env, err := c.call(ctx, http.MethodPost, c.tablePath(table), map[string]interface{}{
		"records": records,
	})
	if err != nil {
		return nil, err
	}

	return c.collectResults(table, "create", env)
}

// UpdateRecords applies the given records, matched by their id field, and
// returns them as stored.
func (c *Client) UpdateRecords(ctx context.Context, table string, records []Record) ([]Record, error) {
	env, err := c.call(ctx, http.MethodPatch, c.tablePath(table), map[string]interface{}{
		"records": records,
	})
	if err != nil {
		return nil, err
	}

	return c.collectResults(table, "update", env)
}

// DeleteRecords removes the records with the given ids.
func (c *Client) DeleteRecords(ctx context.Context, table string, ids []int) error {
	_, err := c.call(ctx, http.MethodDelete, c.tablePath(table), map[string]interface{}{
		"RecordIds": ids,
	})

	return err
}

// ValidateStruct keeps request validation reachable from the repositories
// embedding the client.
func (c *Client) ValidateStruct(v interface{}, requiredFields ...string) error {
	return web.ValidateStruct(v, requiredFields...)
}

func (c *Client) collectResults(table, operation string, env *envelope) ([]Record, error) {
	stored := make([]Record, 0, len(env.Results))

	for _, result := range env.Results {
		if !result.Success {
			message := result.Message
			if message == "" {
				message = fmt.Sprintf("record store rejected %s", operation)
			}
			err := &web.Error{
				Err:    errors.New(message),
				Status: http.StatusBadRequest,
				Fields: result.Errors,
			}

			c.logFailure(table, operation, err)

			return nil, err
		}

		stored = append(stored, result.Data)
	}

	return stored, nil
}

func (c *Client) call(ctx context.Context, method, path string, payload interface{}) (*envelope, error) {
	c.initOnce.Do(func() {
		// No client timeout: a request runs until the store answers or the
		// request context ends.
		c.http = &http.Client{}
	})

	operation := strings.ToLower(method)

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, c.fail(path, operation, errors.Wrap(err, "encoding request"), http.StatusInternalServerError)
		}
		body = bytes.NewReader(raw)
	}

	uri := strings.TrimRight(c.cfg.BaseURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		return nil, c.fail(path, operation, errors.Wrap(err, "building request"), http.StatusInternalServerError)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(path, operation, errors.Wrap(err, "calling record store"), http.StatusBadGateway)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, c.fail(path, operation, errors.Wrap(err, "decoding response"), http.StatusBadGateway)
	}

	if resp.StatusCode >= http.StatusMultipleChoices || !env.Success {
		message := env.Message
		if message == "" {
			message = fmt.Sprintf("record store request failed with status %d", resp.StatusCode)
		}

		return nil, c.fail(path, operation, errors.New(message), http.StatusBadRequest)
	}

	return &env, nil
}

func (c *Client) tablePath(table string) string {
	return fmt.Sprintf("/api/v1/projects/%s/tables/%s/records", c.cfg.ProjectID, table)
}

func (c *Client) fail(target, operation string, err error, status int) error {
	c.logFailure(target, operation, err)

	return web.NewRequestError(err, status)
}

func (c *Client) logFailure(target, operation string, err error) {
	if c.logger == nil {
		return
	}

	c.logger.Error("record store request failed",
		zap.String("target", target),
		zap.String("operation", operation),
		zap.Error(err),
	)
}
