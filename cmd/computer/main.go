package main

import "github.com/JonMunkholm/creational/internal/cli"

func main() {
	cli.Execute(cli.Computer())
}
