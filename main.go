package main

import (
	"context"
	"fmt"
	"os"

	"github.com/GHutch55/exlog/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "exlog:", err)
		os.Exit(1)
	}
}
