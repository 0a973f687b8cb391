package main

import "github.com/papapumpkin/meishiki/cmd"

func main() {
	cmd.Execute()
}
