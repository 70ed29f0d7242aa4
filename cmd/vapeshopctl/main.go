package main

import "github.com/01moynul/vapeshop-golang/cmd/vapeshopctl/commands"

func main() {
	commands.Execute()
}
