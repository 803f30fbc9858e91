package repositories

import "context"

// RemoteTagsRepository lists the tags advertised by a remote Git repository
// without cloning it.
type RemoteTagsRepository interface {
	ListTags(ctx context.Context, url string) ([]string, error)
}
