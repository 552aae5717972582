package main

import "recipebox/commands"

func main() {
	commands.Execute()
}
