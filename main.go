package main

import "github.com/Fepozopo/phold/pkg/cli"

func main() {
	cli.RunCLI()
}
