package main

import "github.com/flo-mic/pipsweep/internal/cmd"

func main() {
	cmd.Execute()
}
