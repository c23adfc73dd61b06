package main

import cmd "github.com/rohmanhakim/jsonld-kit/internal/cli"

func main() {
	cmd.Execute()
}
