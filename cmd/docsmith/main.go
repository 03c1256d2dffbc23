package main

import "github.com/docsmith-dev/docsmith/internal/cli"

func main() {
	cli.Execute()
}
