package main

import "github.com/mcoot/stackline/internal/cli"

func main() {
	cli.Execute()
}
