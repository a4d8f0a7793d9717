package main

import "founderos/cmd/founder/root"

func main() {
	root.Execute()
}
