package content

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"folio/internal/models"
)

// APISource reads content from the upstream backend's JSON API. It is the
// deployment mode where the CMS backend runs separately and this service
// only syndicates.
type APISource struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// NewAPISource builds a source against the backend at baseURL, e.g.
// "https://api.example.com". A zero timeout defaults to 10s.
func NewAPISource(baseURL string, timeout time.Duration) *APISource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &APISource{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

func (a *APISource) get(ctx context.Context, path string, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (a *APISource) Projects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := a.get(ctx, "/api/v1/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (a *APISource) Project(ctx context.Context, slug string) (*models.Project, error) {
	var p models.Project
	if err := a.get(ctx, "/api/v1/projects/"+slug, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *APISource) Diaries(ctx context.Context) ([]models.DiaryEntry, error) {
	var diaries []models.DiaryEntry
	if err := a.get(ctx, "/api/v1/diaries", &diaries); err != nil {
		return nil, err
	}
	return diaries, nil
}

func (a *APISource) Diary(ctx context.Context, slug string) (*models.DiaryEntry, error) {
	var d models.DiaryEntry
	if err := a.get(ctx, "/api/v1/diaries/"+slug, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (a *APISource) SiteInfo(ctx context.Context) (models.SiteInfo, error) {
	var info models.SiteInfo
	if err := a.get(ctx, "/api/v1/system/status", &info); err != nil {
		return info, err
	}
	return info, nil
}
