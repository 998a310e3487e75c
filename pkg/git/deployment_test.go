package git

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gitops-tools/gh-resources/test"
)

func TestCreateDeployment(t *testing.T) {
	ts, received := test.MakeAPIServer(t, http.MethodPost, apiPrefix+"/repos/acme/widgets/deployments", http.StatusCreated, "testdata/deployment.json")
	repo := makeClient(t, ts, nil).Repository("acme", "widgets")

	d, err := repo.CreateDeployment("").Ref("main").Task("deploy").Environment("prod").Create(context.TODO())
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]interface{}{"ref": "main", "task": "deploy", "environment": "prod"}
	if diff := cmp.Diff(want, test.RequestBody(t, received)); diff != "" {
		t.Fatalf("request body incorrect, diff\n%s", diff)
	}
	if d.ID != 1 || d.Environment != "prod" || d.SHA != "a84d88e7554fc1fa21bcbc4efae3c782a70d2b9d" {
		t.Fatalf("deployment incorrectly decoded: %#v", d)
	}
	if d.Repository() != repo {
		t.Fatal("deployment was not attached to the repository")
	}
}

func TestCreateDeploymentWithAllOptions(t *testing.T) {
	ts, received := test.MakeAPIServer(t, http.MethodPost, apiPrefix+"/repos/acme/widgets/deployments", http.StatusCreated, "testdata/deployment.json")
	repo := makeClient(t, ts, nil).Repository("acme", "widgets")

	contexts := []string{"ci/build", "ci/test"}
	_, err := NewDeploymentBuilder(repo, "main").
		Task("deploy:migrations").
		AutoMerge(false).
		RequiredContexts(contexts).
		Payload(`{"deploy":"migrate"}`).
		Environment("staging").
		Description("Deploy request from the CLI").
		Create(context.TODO())
	if err != nil {
		t.Fatal(err)
	}
	contexts[0] = "changed"

	want := map[string]interface{}{
		"ref":               "main",
		"task":              "deploy:migrations",
		"auto_merge":        false,
		"required_contexts": []interface{}{"ci/build", "ci/test"},
		"payload":           `{"deploy":"migrate"}`,
		"environment":       "staging",
		"description":       "Deploy request from the CLI",
	}
	if diff := cmp.Diff(want, test.RequestBody(t, received)); diff != "" {
		t.Fatalf("request body incorrect, diff\n%s", diff)
	}
}

func TestCreateDeploymentWithEmptyRequiredContexts(t *testing.T) {
	ts, received := test.MakeAPIServer(t, http.MethodPost, apiPrefix+"/repos/acme/widgets/deployments", http.StatusCreated, "testdata/deployment.json")
	repo := makeClient(t, ts, nil).Repository("acme", "widgets")

	_, err := repo.CreateDeployment("main").RequiredContexts([]string{}).Create(context.TODO())
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]interface{}{"ref": "main", "required_contexts": []interface{}{}}
	if diff := cmp.Diff(want, test.RequestBody(t, received)); diff != "" {
		t.Fatalf("request body incorrect, diff\n%s", diff)
	}
}

func TestCreateDeploymentStatus(t *testing.T) {
	ts, received := test.MakeAPIServer(t, http.MethodPost, apiPrefix+"/repos/acme/widgets/deployments/1/statuses", http.StatusCreated, "testdata/deployment_status.json")
	repo := makeClient(t, ts, nil).Repository("acme", "widgets")
	d := (&Deployment{ID: 1}).wrap(repo)

	s, err := d.CreateStatus(DeploymentStateSuccess).
		Description("Deployment finished successfully.").
		TargetURL("https://example.com/deployment/42/output").
		Create(context.TODO())
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]interface{}{
		"state":       "success",
		"description": "Deployment finished successfully.",
		"target_url":  "https://example.com/deployment/42/output",
	}
	if diff := cmp.Diff(want, test.RequestBody(t, received)); diff != "" {
		t.Fatalf("request body incorrect, diff\n%s", diff)
	}
	if s.ID != 42 || s.State != DeploymentStateSuccess {
		t.Fatalf("status incorrectly decoded: %#v", s)
	}
}

func TestCreateDeploymentStatusWithUnscopedDeployment(t *testing.T) {
	d := &Deployment{ID: 1}

	_, err := d.CreateStatus(DeploymentStatePending).Description("testing").Create(context.TODO())
	if err != ErrUnscoped {
		t.Fatalf("got %v, want %v", err, ErrUnscoped)
	}
}
