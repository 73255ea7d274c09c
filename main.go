package main

import "github.com/robmorgan/cadence/cmd"

func main() {
	cmd.Execute()
}
