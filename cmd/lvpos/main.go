package main

import "github.com/katalvlaran/lvpos/internal/cli"

func main() {
	cli.Execute()
}
