package main

import "tool-permission/cmd/tool/cmd"

func main() {
	cmd.Execute()
}
