package main

import "github.com/radcomm/riskcalc/internal/cli"

func main() {
	cli.Execute()
}
