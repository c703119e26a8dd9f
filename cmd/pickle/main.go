package main

import "github.com/mcoot/pickleplanner/internal/cli"

func main() {
	cli.Execute()
}
