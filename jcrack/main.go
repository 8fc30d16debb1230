package main

import (
	"github.com/tutils/jcrack/cmd"
)

func main() {
	cmd.Execute()
}
