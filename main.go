package main

import "github.com/jjtimmons/stitch/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
