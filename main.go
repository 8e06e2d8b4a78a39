package main

import "github.com/theirongolddev/atelier/cmd"

func main() {
	cmd.Execute()
}
