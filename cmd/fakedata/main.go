package main

import "github.com/go-arrower/fakedata/internal/cli"

func main() {
	cli.Execute()
}
