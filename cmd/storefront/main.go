package main

import "github.com/Rovan44/shopping-app-44/internal/cli"

func main() {
	cli.Execute()
}
