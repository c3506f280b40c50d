package main

import "github.com/mouse-blink/crowbar/cmd"

func main() {
	cmd.Execute()
}
