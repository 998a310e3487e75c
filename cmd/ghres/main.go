package main

import "github.com/gitops-tools/gh-resources/pkg/cmd"

func main() {
	cmd.Execute()
}
