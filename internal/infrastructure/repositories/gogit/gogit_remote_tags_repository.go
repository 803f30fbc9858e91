package gogit

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/storage/memory"
)

// GogitRemoteTagsRepository lists remote tags with go-git. The remote is
// queried anonymously through an in-memory storer, nothing touches disk.
type GogitRemoteTagsRepository struct{}

// NewGogitRemoteTagsRepository creates a new remote tags lister.
func NewGogitRemoteTagsRepository() *GogitRemoteTagsRepository {
	return &GogitRemoteTagsRepository{}
}

// ListTags returns the short tag names advertised by the remote.
func (r *GogitRemoteTagsRepository) ListTags(ctx context.Context, url string) ([]string, error) {
	//nolint:exhaustruct // Minimal RemoteConfig initialization with required fields only
	remote := git.NewRemote(memory.NewStorage(), &gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{url},
	})

	//nolint:exhaustruct // anonymous listing needs no options
	refs, err := remote.ListContext(ctx, &git.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list remote %s: %w", url, err)
	}

	var tags []string
	for _, ref := range refs {
		if ref.Name().IsTag() {
			tags = append(tags, ref.Name().Short())
		}
	}

	return tags, nil
}
