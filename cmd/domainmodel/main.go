package main

import "domainmodel/internal/cli"

func main() {
	cli.Execute()
}
