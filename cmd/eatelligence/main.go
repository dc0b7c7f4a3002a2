package main

import "github.com/eatelligence/scanner/internal/cli"

func main() {
	cli.Execute()
}
