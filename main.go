package main

import "github.com/steuyve/lsh/cmd"

func main() {
	cmd.Execute()
}
