package main

import "github.com/eslsoft/blinkvocab/cmd"

func main() {
	cmd.Execute()
}
