package main

import "github.com/phung/nurikabe/cmd"

func main() {
	cmd.Execute()
}
