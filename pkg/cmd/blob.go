package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitops-tools/gh-resources/pkg/git"
)

func makeBlobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blob",
		Short: "create and read git blobs",
	}
	cmd.AddCommand(makeBlobCreateCmd())
	cmd.AddCommand(makeBlobReadCmd())
	return cmd
}

func makeBlobCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "create a blob from a file or text",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			filename, _ := cmd.Flags().GetString("file")
			text, _ := cmd.Flags().GetString("text")
			if (filename == "") == !cmd.Flags().Changed("text") {
				return errors.New("exactly one of --file or --text is required")
			}

			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.closeInto(&err)
			repo, err := repository(s.client)
			if err != nil {
				return err
			}

			b := repo.CreateBlob()
			if filename != "" {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", filename, err)
				}
				b = b.BinaryContent(data)
			} else {
				b = b.TextContent(text)
			}
			blob, err := b.Create(cmd.Context())
			if err != nil {
				s.log.Errorf("error creating blob: %s", err)
				return err
			}
			s.log.Infow("created blob", "repo", repo.FullName(), "sha", blob.SHA)
			return printYAML(s, cmd.OutOrStdout(), blob)
		},
	}
	cmd.Flags().String(
		"file",
		"",
		"file to upload as the blob content",
	)
	cmd.Flags().String(
		"text",
		"",
		"text to upload as the blob content",
	)
	return cmd
}

func makeBlobReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read",
		Short: "write the decoded content of a blob to stdout",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			sha, _ := cmd.Flags().GetString("sha")

			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.closeInto(&err)
			repo, err := repository(s.client)
			if err != nil {
				return err
			}

			blob, err := repo.GetBlob(cmd.Context(), sha)
			if err != nil {
				s.log.Errorf("error fetching blob: %s", err)
				return err
			}
			data, err := blob.Bytes()
			if err != nil {
				var encErr *git.UnsupportedEncodingError
				if errors.As(err, &encErr) {
					s.log.Errorw("blob content can't be decoded", "sha", sha, "encoding", encErr.Encoding)
				}
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().String(
		"sha",
		"",
		"SHA of the blob to read",
	)
	logIfError(cmd.MarkFlagRequired("sha"))
	return cmd
}
