package main

import "github.com/kamusis/techradar/cmd"

func main() {
	cmd.Execute()
}
