//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/outdated/internal/domain/repositories"
)

// StubRemoteTagsRepository implements repositories.RemoteTagsRepository
// with a fixed tag list per remote URL.
type StubRemoteTagsRepository struct {
	// --- configured responses ---
	Tags map[string][]string
	Err  error

	// --- ListTags ---
	ListedURLs []string
}

var _ repositories.RemoteTagsRepository = (*StubRemoteTagsRepository)(nil)

func (r *StubRemoteTagsRepository) ListTags(_ context.Context, url string) ([]string, error) {
	r.ListedURLs = append(r.ListedURLs, url)
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Tags[url], nil
}
