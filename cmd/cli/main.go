package main

import "github.com/JohnnyBoySou/dash-s2mangas/cmd/cli/command"

func main() {
	command.Execute()
}
