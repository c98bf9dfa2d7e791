package main

import "github.com/user/pciscope/cmd"

func main() {
	cmd.Execute()
}
