package main

import "mcphello/cmd/mcphello/root"

func main() {
	root.Execute()
}
