package main

import "github.com/marcus/scandash/cmd"

func main() {
	cmd.Execute()
}
