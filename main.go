package main

import "github.com/omnisig/go-txbuilder/cmd"

func main() {
	cmd.Execute()
}
