package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/utils"
	"github.com/MKhiriev/go-site-keeper/models"
)

const (
	retryCount   = 2
	retryWait    = 200 * time.Millisecond
	retryMaxWait = 2 * time.Second
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] rooted at cfg.HTTPAddress. Requests answered with 429 or
// 503 are retried a few times with backoff.
//
// Returns an error if cfg.HTTPAddress is empty or not a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL := utils.BaseURL(cfg.HTTPAddress)
	if err := checkBaseURL(baseURL); err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryMaxWait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if resp == nil {
				return false
			}
			return resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() == http.StatusServiceUnavailable
		})

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)
	return a, nil
}

func checkBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("address must include host and scheme")
	}
	return nil
}

// SetToken implements [ServerAdapter]. A "Bearer " prefix is accepted and
// stripped.
func (h *httpServerAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)
	if parsed, err := utils.ParseBearerToken(token); err == nil {
		token = parsed
	}
	h.token = token
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// Version implements [ServerAdapter] via GET /api/version/.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// Validate implements [ServerAdapter] via POST /api/site-config/validate.
func (h *httpServerAdapter) Validate(ctx context.Context, sections models.Sections) (models.Configuration, error) {
	var cfg models.Configuration

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sections).
		SetResult(&cfg).
		Post("/api/site-config/validate")
	if err != nil {
		return models.Configuration{}, fmt.Errorf("validate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Configuration{}, err
	}

	return cfg, nil
}

// Publish implements [ServerAdapter] via POST /api/site-config/. The stored
// token is sent as a bearer credential.
func (h *httpServerAdapter) Publish(ctx context.Context, sections models.Sections) (models.Revision, bool, error) {
	if h.token == "" {
		return models.Revision{}, false, fmt.Errorf("%w: no publisher token configured", ErrUnauthorized)
	}

	var rev models.Revision

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(h.token).
		SetBody(sections).
		SetResult(&rev).
		Post("/api/site-config/")
	if err != nil {
		return models.Revision{}, false, fmt.Errorf("publish request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Revision{}, false, err
	}

	h.logger.Debug().Str("revision_id", rev.ID).Int("status", resp.StatusCode()).Msg("site config published")
	return rev, resp.StatusCode() == http.StatusCreated, nil
}

// Latest implements [ServerAdapter] via GET /api/site-config/latest.
func (h *httpServerAdapter) Latest(ctx context.Context) (models.Revision, error) {
	return h.getRevision(ctx, "/api/site-config/latest")
}

// Revision implements [ServerAdapter] via GET /api/site-config/revisions/{id}.
func (h *httpServerAdapter) Revision(ctx context.Context, id string) (models.Revision, error) {
	return h.getRevision(ctx, "/api/site-config/revisions/"+url.PathEscape(id))
}

func (h *httpServerAdapter) getRevision(ctx context.Context, path string) (models.Revision, error) {
	var rev models.Revision

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&rev).
		Get(path)
	if err != nil {
		return models.Revision{}, fmt.Errorf("revision request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Revision{}, err
	}

	return rev, nil
}

// History implements [ServerAdapter] via GET /api/site-config/revisions. A
// non-positive limit lets the server pick its default page size.
func (h *httpServerAdapter) History(ctx context.Context, limit int) ([]models.Revision, error) {
	var list models.RevisionList

	req := h.client.R().
		SetContext(ctx).
		SetResult(&list)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/site-config/revisions")
	if err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.Revisions, nil
}

// Head implements [ServerAdapter] via GET /api/site-config/latest/head.
func (h *httpServerAdapter) Head(ctx context.Context, id string) (models.RenderedHead, error) {
	var head models.RenderedHead

	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("format", "json").
		SetResult(&head)
	if id != "" {
		req.SetQueryParam("id", id)
	}

	resp, err := req.Get("/api/site-config/latest/head")
	if err != nil {
		return models.RenderedHead{}, fmt.Errorf("head request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RenderedHead{}, err
	}

	return head, nil
}

// Preview implements [ServerAdapter] via GET /preview.
func (h *httpServerAdapter) Preview(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html").
		Get("/preview")
	if err != nil {
		return "", fmt.Errorf("preview request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}
