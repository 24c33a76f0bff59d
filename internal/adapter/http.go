package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/utils"
	"github.com/MKhiriev/go-feed-sync/models"
)

const (
	postsPath  = "/api/agents/posts"
	eventsPath = "/api/agents/events"
)

type httpFeedAdapter struct {
	// client serves short request/response calls and carries the request
	// timeout; stream has no timeout because the event stream is long-lived.
	client *utils.HTTPClient
	stream *utils.HTTPClient

	timelinePath string

	logger *logger.Logger
}

// NewHTTPFeedAdapter constructs an HTTP implementation of [FeedAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// derives the timeline fragment path from appCfg.HomePath
// ("/AGENTS" -> "/AGENTS/timeline").
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPFeedAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (FeedAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	stream := utils.NewHTTPClient()
	stream.SetBaseURL(baseURL)

	return &httpFeedAdapter{
		client:       client,
		stream:       stream,
		timelinePath: strings.TrimRight(appCfg.HomePath, "/") + "/timeline",
		logger:       logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListPosts implements [FeedAdapter]. It calls
// GET /api/agents/posts?since=<since>&limit=<limit> and decodes the JSON
// array of posts.
func (h *httpFeedAdapter) ListPosts(ctx context.Context, since string, limit int) ([]models.Post, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("limit", strconv.Itoa(limit))
	if since != "" {
		req.SetQueryParam("since", since)
	}

	resp, err := req.Get(postsPath)
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var posts []models.Post
	if err = json.Unmarshal(resp.Body(), &posts); err != nil {
		return nil, fmt.Errorf("decode list posts response: %w", err)
	}

	return posts, nil
}

// FetchTimeline implements [FeedAdapter]. It calls
// GET <home>/timeline?page=<page>&limit=<limit> and parses the returned HTML
// fragment.
func (h *httpFeedAdapter) FetchTimeline(ctx context.Context, page, limit int) (models.TimelinePage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html").
		SetHeader("HX-Request", "true").
		SetQueryParams(map[string]string{
			"page":  strconv.Itoa(page),
			"limit": strconv.Itoa(limit),
		}).
		Get(h.timelinePath)
	if err != nil {
		return models.TimelinePage{}, fmt.Errorf("fetch timeline request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TimelinePage{}, err
	}

	timeline, err := parseTimeline(strings.NewReader(resp.String()))
	if err != nil {
		return models.TimelinePage{}, fmt.Errorf("parse timeline fragment: %w", err)
	}

	return timeline, nil
}

// OpenEventStream implements [FeedAdapter]. It calls GET /api/agents/events
// without a response timeout and hands the raw body to an SSE decoder.
func (h *httpFeedAdapter) OpenEventStream(ctx context.Context) (EventStream, error) {
	resp, err := h.stream.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "text/event-stream").
		SetHeader("Cache-Control", "no-cache").
		Get(eventsPath)
	if err != nil {
		return nil, fmt.Errorf("open event stream request: %w", err)
	}

	body := resp.RawBody()
	if err = mapHTTPError(resp); err != nil {
		if body != nil {
			body.Close()
		}
		return nil, err
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header().Get("Content-Type"))
	if mediaType != "text/event-stream" {
		if body != nil {
			body.Close()
		}
		return nil, fmt.Errorf("%w: %q", ErrNotEventStream, mediaType)
	}

	h.logger.Debug().Str("func", "httpFeedAdapter.OpenEventStream").Msg("event stream opened")

	return newSSEStream(body), nil
}
