package main

import "color-api/cmd"

func main() {
	cmd.Execute()
}
