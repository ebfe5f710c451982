package main

import "github.com/pfrederiksen/contest-digest/internal/cli"

func main() {
	cli.Execute()
}
