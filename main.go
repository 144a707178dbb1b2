package main

import "debt-detective/src/handler/cli"

func main() {
	cli.Run()
}
