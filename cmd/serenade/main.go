package main

import "github.com/tessro/serenade/internal/cli"

func main() {
	cli.Execute()
}
