package main

import "ident-translator/internal/cli"

func main() {
	cli.Execute()
}
