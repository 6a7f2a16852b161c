package main

import "github.com/mterrano/lockbox/cmd/lockbox/cmd"

func main() {
	cmd.Execute()
}
