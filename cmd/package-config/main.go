package main

import "github.com/MichaelRFairhurst/package-config/internal/cli"

func main() {
	cli.Execute()
}
