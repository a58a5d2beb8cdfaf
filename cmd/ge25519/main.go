package main

import (
	"github.com/noot/go-ge25519/command/root"
)

func main() {
	root.NewRootCommand().Execute()
}
