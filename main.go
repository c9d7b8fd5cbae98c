package main

import "github.com/lepinkainen/bookaura/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
