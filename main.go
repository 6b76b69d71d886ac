package main

import "subc/cmd"

func main() {
	cmd.Execute()
}
