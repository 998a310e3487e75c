package cmd

import (
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func logIfError(e error) {
	if e != nil {
		log.Fatal(e)
	}
}

func makeRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ghres",
		Short:         "Create and manage blobs, deployments and hooks through the GitHub API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String(
		"server-url",
		"",
		"GitHub Enterprise URL e.g. https://github.example.com, defaults to github.com",
	)
	logIfError(viper.BindPFlag("server-url", flags.Lookup("server-url")))
	flags.String(
		"repo",
		"",
		"repository to operate on e.g. my-org/my-repo",
	)
	logIfError(viper.BindPFlag("repo", flags.Lookup("repo")))
	flags.String(
		"org",
		"",
		"organization to operate on, for organization hooks",
	)
	logIfError(viper.BindPFlag("org", flags.Lookup("org")))
	flags.String(
		"token-secret-name",
		"",
		"read the API token from this Kubernetes secret instead of GITHUB_TOKEN or GH_TOKEN",
	)
	logIfError(viper.BindPFlag("token-secret-name", flags.Lookup("token-secret-name")))
	flags.String(
		"token-secret-namespace",
		"default",
		"namespace of the token secret",
	)
	logIfError(viper.BindPFlag("token-secret-namespace", flags.Lookup("token-secret-namespace")))
	flags.String(
		"token-secret-key",
		"token",
		"key in the token secret that holds the token",
	)
	logIfError(viper.BindPFlag("token-secret-key", flags.Lookup("token-secret-key")))
	flags.String(
		"metrics-file",
		"",
		"write API call metrics to this file in the Prometheus text format",
	)
	logIfError(viper.BindPFlag("metrics-file", flags.Lookup("metrics-file")))
	flags.Bool(
		"debug",
		false,
		"log every API request",
	)
	logIfError(viper.BindPFlag("debug", flags.Lookup("debug")))

	cmd.AddCommand(makeBlobCmd())
	cmd.AddCommand(makeDeploymentCmd())
	cmd.AddCommand(makeHookCmd())
	return cmd
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetEnvPrefix("ghres")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Execute runs the ghres command.
func Execute() {
	if err := makeRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
