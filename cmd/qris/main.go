package main

import "github.com/mkadit/qris/internal/cli"

func main() {
	cli.Execute()
}
