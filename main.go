package main

import "github.com/keyline-data/keyline/protocol"

func main() {
	protocol.Execute()
}
