package main

import "github.com/hupe1980/hexstr/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
