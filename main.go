package main

import "github.com/scriptautomation123/fqcnfix/internal/cli"

func main() {
	cli.Execute()
}
