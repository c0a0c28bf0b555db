package main

import "github.com/nanosep/portfolio/internal/cli"

func main() {
	cli.Execute()
}
