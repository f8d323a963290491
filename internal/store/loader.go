package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sectiond/internal/section"
)

// FileLoader reads serialized sections from dir, one JSON file per
// slug.
func FileLoader(dir string) Loader {
	return func(ctx context.Context, slug string) (*section.Section, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(filepath.Join(dir, slug+".json"))
		if err != nil {
			return nil, fmt.Errorf("read section %s: %w", slug, err)
		}
		return section.Decode(data)
	}
}

// HTTPLoader fetches serialized sections from baseURL/<slug>.json. A
// non-200 response or a malformed body is a load failure, which the
// store records as absence rather than an error state.
func HTTPLoader(baseURL string) Loader {
	client := &http.Client{Timeout: 30 * time.Second}
	base := strings.TrimRight(baseURL, "/")

	return func(ctx context.Context, slug string) (*section.Section, error) {
		u := fmt.Sprintf("%s/%s.json", base, url.PathEscape(slug))
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, fmt.Errorf("build request for %s: %w", slug, err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch section %s: %w", slug, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			return nil, fmt.Errorf("fetch section %s: status %d", slug, resp.StatusCode)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read section %s: %w", slug, err)
		}
		return section.Decode(data)
	}
}
