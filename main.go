package main

import "item-notes/cmd"

func main() {
	cmd.Execute()
}
