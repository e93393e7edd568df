package main

import "github.com/khanhnv2901/ssllint/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
