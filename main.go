package main

import "github.com/johnqh/sudojo-lib/cmd"

func main() {
	cmd.Execute()
}
