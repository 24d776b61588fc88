package main

import "github.com/robalobadob/phonicle/internal/cli"

func main() {
	cli.Execute()
}
