package main

import (
	"github.com/verctl/verctl/pkg/cli"
)

func main() {
	cli.Execute()
}
