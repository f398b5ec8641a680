package main

import "github.com/mouse-blink/listedit/cmd"

func main() {
	cmd.Execute()
}
