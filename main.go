package main

import "github.com/graphshell/gsh/internal/repl"

func main() {
	repl.Run()
}
