package main

import "mathplus/cmd"

func main() {
	cmd.Execute()
}
