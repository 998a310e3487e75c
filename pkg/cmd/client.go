package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jenkins-x/go-scm/scm/factory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"sigs.k8s.io/yaml"

	"github.com/gitops-tools/gh-resources/pkg/git"
	"github.com/gitops-tools/gh-resources/pkg/logger"
	"github.com/gitops-tools/gh-resources/pkg/metrics"
	"github.com/gitops-tools/gh-resources/pkg/secrets"
)

// session is the client for a single command, along with what needs to be
// flushed when the command completes.
type session struct {
	client   *git.Client
	log      logger.Logger
	registry *prometheus.Registry
	sync     func() error
}

func newSession(ctx context.Context) (*session, error) {
	zl, err := newZapLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	sugar := zl.Sugar()

	token, err := tokenGetter().Token(ctx)
	if err != nil {
		if viper.GetString("token-secret-name") != "" {
			return nil, fmt.Errorf("failed to read the API token: %w", err)
		}
		sugar.Infof("%s, sending unauthenticated requests", err)
	}

	scmClient, err := factory.NewClient("github", viper.GetString("server-url"), token)
	if err != nil {
		return nil, fmt.Errorf("failed to create the client: %w", err)
	}
	reg := prometheus.NewRegistry()
	return &session{
		client:   git.New(scmClient, metrics.New(reg), sugar),
		log:      sugar,
		registry: reg,
		sync:     zl.Sync,
	}, nil
}

// closeInto closes the session, reporting a failure through err unless the
// command has already failed.
func (s *session) closeInto(err *error) {
	if cerr := s.close(); cerr != nil {
		s.log.Errorf("error closing session: %s", cerr)
		if *err == nil {
			*err = cerr
		}
	}
}

// close writes out the metrics if requested and flushes the logger.
func (s *session) close() error {
	if f := viper.GetString("metrics-file"); f != "" {
		if err := prometheus.WriteToTextfile(f, s.registry); err != nil {
			return fmt.Errorf("failed to write metrics to %s: %w", f, err)
		}
	}
	// Sync fails on unbuffered stderr on some platforms.
	_ = s.sync()
	return nil
}

func newZapLogger() (*zap.Logger, error) {
	if viper.GetBool("debug") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func tokenGetter() secrets.TokenGetter {
	name := viper.GetString("token-secret-name")
	if name == "" {
		return secrets.NewEnv()
	}
	return lazyKubeToken{
		namespace: viper.GetString("token-secret-namespace"),
		name:      name,
		key:       viper.GetString("token-secret-key"),
	}
}

// lazyKubeToken only connects to the cluster when the token is requested.
type lazyKubeToken struct {
	namespace string
	name      string
	key       string
}

func (l lazyKubeToken) Token(ctx context.Context) (string, error) {
	clusterConfig, err := rest.InClusterConfig()
	if err != nil {
		return "", fmt.Errorf("failed to get in cluster config: %w", err)
	}
	coreClient, err := kubernetes.NewForConfig(clusterConfig)
	if err != nil {
		return "", fmt.Errorf("failed to create the kubernetes client: %w", err)
	}
	return secrets.New(l.namespace, l.name, l.key, coreClient).Token(ctx)
}

func repository(c *git.Client) (*git.Repository, error) {
	full := viper.GetString("repo")
	parts := strings.Split(full, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid repository %q, expected owner/name", full)
	}
	return c.Repository(parts[0], parts[1]), nil
}

// hookScope returns the organization if one is configured, or the
// repository.
func hookScope(c *git.Client) (git.HookScope, error) {
	if org := viper.GetString("org"); org != "" {
		return c.Organization(org), nil
	}
	return repository(c)
}

func printYAML(s *session, out io.Writer, v interface{}) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		s.log.Errorf("error marshaling output: %s", err)
		return err
	}
	_, err = out.Write(b)
	return err
}
