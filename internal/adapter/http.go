package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-exercism-backup/internal/config"
	"github.com/MKhiriev/go-exercism-backup/internal/logger"
	"github.com/MKhiriev/go-exercism-backup/internal/utils"
	"github.com/MKhiriev/go-exercism-backup/models"
)

type httpSolutionsAdapter struct {
	client *utils.HTTPClient

	// listing query parameters derived from the backup filters
	trackSlug string
	status    string

	logger *logger.Logger
}

// NewHTTPSolutionsAdapter constructs the resty implementation of
// [SolutionsAdapter]. It normalises and validates adapterCfg.BaseURL,
// attaches token as a bearer token to every request and derives the
// server-side listing filters from settings.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPSolutionsAdapter(
	adapterCfg config.ClientAdapter,
	appCfg config.ClientApp,
	settings config.BackupSettings,
	log *logger.Logger,
) (SolutionsAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(adapterCfg.RequestTimeout),
		utils.WithBearerToken(appCfg.Token),
		utils.WithUserAgent("exbackup/"+appCfg.Version),
		utils.WithRunIDHeader(),
		utils.WithRequestLogging(log),
	)

	a := &httpSolutionsAdapter{
		client: client,
		status: settings.Status.RemoteFilter(),
		logger: log,
	}
	if track, ok := settings.SingleTrack(); ok {
		a.trackSlug = track
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// ListSolutions implements [SolutionsAdapter]. It GETs
// GET /v2/solutions?page=N&sort_order=newest_first, adding track_slug and
// status when the backup filters allow the server to narrow the listing.
func (h *httpSolutionsAdapter) ListSolutions(ctx context.Context, page int) (models.SolutionsPage, error) {
	var result models.SolutionsPage

	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("sort_order", "newest_first").
		SetResult(&result)
	if h.trackSlug != "" {
		req.SetQueryParam("track_slug", h.trackSlug)
	}
	if h.status != "" {
		req.SetQueryParam("status", h.status)
	}

	resp, err := req.Get("/v2/solutions")
	if err != nil {
		return models.SolutionsPage{}, fmt.Errorf("list solutions page %d: %w", page, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SolutionsPage{}, fmt.Errorf("list solutions page %d: %w", page, err)
	}

	h.logger.Trace().
		Int("page", page).
		Int("total_pages", result.Meta.TotalPages).
		Int("results", len(result.Results)).
		Msg("fetched solutions page")

	return result, nil
}

// ListFiles implements [SolutionsAdapter] using GET /v1/solutions/{uuid}.
func (h *httpSolutionsAdapter) ListFiles(ctx context.Context, uuid string) ([]string, error) {
	var result models.SolutionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("uuid", uuid).
		SetResult(&result).
		Get("/v1/solutions/{uuid}")
	if err != nil {
		return nil, fmt.Errorf("list files of solution %s: %w", uuid, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list files of solution %s: %w", uuid, err)
	}

	return result.Solution.Files, nil
}

// StreamFile implements [SolutionsAdapter] using
// GET /v1/solutions/{uuid}/files/{path}. The response body is handed to the
// caller unparsed.
func (h *httpSolutionsAdapter) StreamFile(ctx context.Context, uuid, path string) (io.ReadCloser, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetPathParam("uuid", uuid).
		SetRawPathParam("path", escapeFilePath(path)).
		Get("/v1/solutions/{uuid}/files/{path}")
	if err != nil {
		return nil, fmt.Errorf("download %s of solution %s: %w", path, uuid, err)
	}
	if err = mapStreamError(resp); err != nil {
		return nil, fmt.Errorf("download %s of solution %s: %w", path, uuid, err)
	}

	return resp.RawBody(), nil
}

// ListIterations implements [SolutionsAdapter] using
// GET /v2/solutions/{uuid}?sideload[]=iterations.
func (h *httpSolutionsAdapter) ListIterations(ctx context.Context, uuid string) ([]models.Iteration, error) {
	var result models.SolutionIterationsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("uuid", uuid).
		SetQueryParam("sideload[]", "iterations").
		SetResult(&result).
		Get("/v2/solutions/{uuid}")
	if err != nil {
		return nil, fmt.Errorf("list iterations of solution %s: %w", uuid, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list iterations of solution %s: %w", uuid, err)
	}

	return result.Iterations, nil
}

// FetchIterationFiles implements [SolutionsAdapter] using
// GET /v2/solutions/{uuid}/submissions/{submission_uuid}/files.
func (h *httpSolutionsAdapter) FetchIterationFiles(ctx context.Context, uuid, submissionUUID string) ([]models.SubmissionFile, error) {
	var result models.SubmissionFilesResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"uuid":       uuid,
			"submission": submissionUUID,
		}).
		SetResult(&result).
		Get("/v2/solutions/{uuid}/submissions/{submission}/files")
	if err != nil {
		return nil, fmt.Errorf("fetch files of submission %s: %w", submissionUUID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("fetch files of submission %s: %w", submissionUUID, err)
	}

	return result.Files, nil
}

// escapeFilePath escapes every segment of a relative file path but keeps the
// separators, so nested files map onto nested URL paths.
func escapeFilePath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
