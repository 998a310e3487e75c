package git

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Deployment is a request to deploy a ref of a repository to an environment.
type Deployment struct {
	ID            int64           `json:"id"`
	URL           string          `json:"url"`
	SHA           string          `json:"sha"`
	Ref           string          `json:"ref"`
	Task          string          `json:"task"`
	Payload       json.RawMessage `json:"payload"`
	Environment   string          `json:"environment"`
	Description   string          `json:"description"`
	StatusesURL   string          `json:"statuses_url"`
	RepositoryURL string          `json:"repository_url"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	repo *Repository
}

// Repository returns the repository the deployment was created in, or nil
// if it was not read through a Repository.
func (d *Deployment) Repository() *Repository {
	return d.repo
}

func (d *Deployment) wrap(r *Repository) *Deployment {
	d.repo = r
	return d
}

// DeploymentBuilder configures a new deployment.
type DeploymentBuilder struct {
	repo *Repository
	req  Requester
}

// NewDeploymentBuilder starts building a deployment of ref in the
// repository, an empty ref leaves it to be configured later.
func NewDeploymentBuilder(r *Repository, ref string) DeploymentBuilder {
	b := DeploymentBuilder{repo: r, req: r.root.NewRequester("create_deployment")}
	if ref != "" {
		b = b.Ref(ref)
	}
	return b
}

// CreateDeployment starts building a deployment of ref in the repository.
func (r *Repository) CreateDeployment(ref string) DeploymentBuilder {
	return NewDeploymentBuilder(r, ref)
}

// Ref sets the branch, tag or SHA to deploy.
func (b DeploymentBuilder) Ref(branch string) DeploymentBuilder {
	b.req = b.req.With("ref", branch)
	return b
}

// Task sets the task to execute e.g. "deploy" or "deploy:migrations".
func (b DeploymentBuilder) Task(task string) DeploymentBuilder {
	b.req = b.req.With("task", task)
	return b
}

// AutoMerge sets whether the default branch is merged into the ref first.
func (b DeploymentBuilder) AutoMerge(autoMerge bool) DeploymentBuilder {
	b.req = b.req.With("auto_merge", autoMerge)
	return b
}

// RequiredContexts sets the status contexts that must pass before deploying.
//
// An empty, non-nil slice skips the checks entirely.
func (b DeploymentBuilder) RequiredContexts(contexts []string) DeploymentBuilder {
	if contexts != nil {
		contexts = append([]string{}, contexts...)
	}
	b.req = b.req.With("required_contexts", contexts)
	return b
}

// Payload sets extra information for the deployment.
func (b DeploymentBuilder) Payload(payload string) DeploymentBuilder {
	b.req = b.req.With("payload", payload)
	return b
}

// Environment sets the target environment e.g. "production".
func (b DeploymentBuilder) Environment(environment string) DeploymentBuilder {
	b.req = b.req.With("environment", environment)
	return b
}

// Description sets a short description of the deployment.
func (b DeploymentBuilder) Description(description string) DeploymentBuilder {
	b.req = b.req.With("description", description)
	return b
}

// Create creates the deployment.
func (b DeploymentBuilder) Create(ctx context.Context) (*Deployment, error) {
	d := &Deployment{}
	if err := b.req.Method(http.MethodPost).To(ctx, b.repo.APITailURL("deployments"), d); err != nil {
		return nil, err
	}
	return d.wrap(b.repo), nil
}

// DeploymentState is the state of a deployment status.
type DeploymentState string

// The states a deployment can be in.
const (
	DeploymentStateError      DeploymentState = "error"
	DeploymentStateFailure    DeploymentState = "failure"
	DeploymentStateInactive   DeploymentState = "inactive"
	DeploymentStateInProgress DeploymentState = "in_progress"
	DeploymentStateQueued     DeploymentState = "queued"
	DeploymentStatePending    DeploymentState = "pending"
	DeploymentStateSuccess    DeploymentState = "success"
)

// DeploymentStatus records the progress of a Deployment.
type DeploymentStatus struct {
	ID          int64           `json:"id"`
	URL         string          `json:"url"`
	State       DeploymentState `json:"state"`
	Description string          `json:"description"`
	TargetURL   string          `json:"target_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DeploymentStatusBuilder configures a new status for a deployment.
type DeploymentStatusBuilder struct {
	deployment *Deployment
	req        Requester
}

// CreateStatus starts building a status for the deployment.
//
// The deployment must have been created through a Repository.
func (d *Deployment) CreateStatus(state DeploymentState) DeploymentStatusBuilder {
	b := DeploymentStatusBuilder{deployment: d}
	if d.repo != nil {
		b.req = d.repo.root.NewRequester("create_deployment_status").With("state", string(state))
	}
	return b
}

// Description sets a short description of the status.
func (b DeploymentStatusBuilder) Description(description string) DeploymentStatusBuilder {
	b.req = b.req.With("description", description)
	return b
}

// TargetURL sets the URL for the output of the deployment.
func (b DeploymentStatusBuilder) TargetURL(target string) DeploymentStatusBuilder {
	b.req = b.req.With("target_url", target)
	return b
}

// Create creates the deployment status.
func (b DeploymentStatusBuilder) Create(ctx context.Context) (*DeploymentStatus, error) {
	repo := b.deployment.repo
	if repo == nil {
		return nil, ErrUnscoped
	}
	s := &DeploymentStatus{}
	path := repo.APITailURL(fmt.Sprintf("deployments/%d/statuses", b.deployment.ID))
	if err := b.req.Method(http.MethodPost).To(ctx, path, s); err != nil {
		return nil, err
	}
	return s, nil
}
