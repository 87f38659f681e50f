package main

import (
	"github.com/nanovms/nixos-refind/cmd"
)

func main() {
	cmd.GetRootCommand().Execute()
}
