package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

func makeDeploymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deployment",
		Short: "create deployments",
	}
	cmd.AddCommand(makeDeploymentCreateCmd())
	return cmd
}

func makeDeploymentCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "request a deployment of a ref",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			flags := cmd.Flags()
			ref, _ := flags.GetString("ref")

			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.closeInto(&err)
			repo, err := repository(s.client)
			if err != nil {
				return err
			}

			b := repo.CreateDeployment(ref)
			if flags.Changed("task") {
				v, _ := flags.GetString("task")
				b = b.Task(v)
			}
			if flags.Changed("environment") {
				v, _ := flags.GetString("environment")
				b = b.Environment(v)
			}
			if flags.Changed("description") {
				v, _ := flags.GetString("description")
				b = b.Description(v)
			}
			if flags.Changed("auto-merge") {
				v, _ := flags.GetBool("auto-merge")
				b = b.AutoMerge(v)
			}
			if flags.Changed("required-context") {
				v, _ := flags.GetStringSlice("required-context")
				b = b.RequiredContexts(nonEmpty(v))
			}
			if filename, _ := flags.GetString("payload-file"); filename != "" {
				payload, err := readPayload(filename)
				if err != nil {
					return err
				}
				b = b.Payload(payload)
			}

			d, err := b.Create(cmd.Context())
			if err != nil {
				s.log.Errorf("error creating deployment: %s", err)
				return err
			}
			s.log.Infow("created deployment", "repo", repo.FullName(), "id", d.ID, "environment", d.Environment)
			return printYAML(s, cmd.OutOrStdout(), d)
		},
	}
	flags := cmd.Flags()
	flags.String("ref", "", "branch, tag or SHA to deploy")
	logIfError(cmd.MarkFlagRequired("ref"))
	flags.String("task", "", "task to execute e.g. deploy:migrations")
	flags.String("environment", "", "environment to deploy to e.g. production")
	flags.String("description", "", "short description of the deployment")
	flags.Bool("auto-merge", true, "merge the default branch into the ref before deploying")
	flags.StringSlice("required-context", nil, "status context that must pass before deploying, pass an empty value to skip checks")
	flags.String("payload-file", "", "YAML or JSON file with extra information for the deployment")
	return cmd
}

// readPayload converts a YAML or JSON payload file to the JSON string that
// is sent to the service.
func readPayload(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}
	j, err := yaml.YAMLToJSON(b)
	if err != nil {
		return "", fmt.Errorf("failed to parse payload in %s: %w", filename, err)
	}
	return string(j), nil
}

func nonEmpty(s []string) []string {
	r := []string{}
	for _, v := range s {
		if v != "" {
			r = append(r, v)
		}
	}
	return r
}
