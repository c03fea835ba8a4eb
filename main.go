package main

import "github.com/expenso-app/expenso/cmd"

func main() {
	cmd.Execute()
}
