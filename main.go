package main

import (
	"os"

	"github.com/thenoetrevino/lanes/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
