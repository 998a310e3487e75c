package git

import (
	"context"

	"github.com/jenkins-x/go-scm/scm"
	"go.uber.org/zap"

	"github.com/gitops-tools/gh-resources/pkg/logger"
	"github.com/gitops-tools/gh-resources/pkg/metrics"
)

// Doer executes requests against the hosting service.
//
// It is satisfied by go-scm's *scm.Client, which resolves the request path
// against its base URL.
type Doer interface {
	Do(ctx context.Context, in *scm.Request) (*scm.Response, error)
}

// New creates and returns a Client that issues requests through c.
//
// A nil metrics or logger disables the respective output.
func New(c Doer, m metrics.Interface, l logger.Logger) *Client {
	if m == nil {
		m = nopMetrics{}
	}
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	return &Client{client: c, metrics: m, log: l}
}

// Client is the execution root for all requests, every Repository and
// Organization and the entities read through them refer back to it.
type Client struct {
	client  Doer
	metrics metrics.Interface
	log     logger.Logger
}

// Repository returns the owning context for the repository owner/name.
func (c *Client) Repository(owner, name string) *Repository {
	return &Repository{Owner: owner, Name: name, root: c}
}

// Organization returns the owning context for the organization login.
func (c *Client) Organization(login string) *Organization {
	return &Organization{Login: login, root: c}
}

// NewRequester creates a Requester, name is used to label the metrics for
// the call.
func (c *Client) NewRequester(name string) Requester {
	return Requester{root: c, name: name}
}

type nopMetrics struct{}

func (nopMetrics) CountAPICall(string)       {}
func (nopMetrics) CountFailedAPICall(string) {}
