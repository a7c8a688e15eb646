package main

import (
	"github.com/kozaktomas/photo-printer/cmd"
)

func main() {
	cmd.Execute()
}
