package main

import "github.com/codeflash-sh/codeflash/cmd"

func main() {
	cmd.Execute()
}
