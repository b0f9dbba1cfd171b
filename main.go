package main

import "github.com/minsukang/ytcoach/internal/adapters/cli"

func main() {
	cli.Execute()
}
