package main

import "github.com/bokol-ooch/temporizadores/cmd"

func main() {
	cmd.Execute()
}
