package git

import (
	"context"
	"fmt"
)

// Repository is the owning context for repository scoped resources.
type Repository struct {
	Owner string
	Name  string
	root  *Client
}

// FullName returns the owner/name form of the repository.
func (r *Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// Root returns the Client that requests for this repository are issued
// through.
func (r *Repository) Root() *Client {
	return r.root
}

// APITailURL returns the API path for tail within this repository.
func (r *Repository) APITailURL(tail string) string {
	if tail == "" {
		return fmt.Sprintf("/repos/%s/%s", r.Owner, r.Name)
	}
	return fmt.Sprintf("/repos/%s/%s/%s", r.Owner, r.Name, tail)
}

// HookRoute implements the HookScope interface.
func (r *Repository) HookRoute(id int64) string {
	return r.APITailURL(fmt.Sprintf("hooks/%d", id))
}

// GetBlob fetches the blob identified by sha.
func (r *Repository) GetBlob(ctx context.Context, sha string) (*Blob, error) {
	blob := &Blob{}
	err := r.root.NewRequester("get_blob").To(ctx, r.APITailURL("git/blobs/"+sha), blob)
	if err != nil {
		return nil, err
	}
	return blob, nil
}

// GetHook fetches the repository hook with the provided id.
func (r *Repository) GetHook(ctx context.Context, id int64) (*Hook, error) {
	return GetHook(ctx, r, id)
}

// Organization is the owning context for organization scoped resources.
type Organization struct {
	Login string
	root  *Client
}

// Root returns the Client that requests for this organization are issued
// through.
func (o *Organization) Root() *Client {
	return o.root
}

// HookRoute implements the HookScope interface.
func (o *Organization) HookRoute(id int64) string {
	return fmt.Sprintf("/orgs/%s/hooks/%d", o.Login, id)
}

// GetHook fetches the organization hook with the provided id.
func (o *Organization) GetHook(ctx context.Context, id int64) (*Hook, error) {
	return GetHook(ctx, o, id)
}
