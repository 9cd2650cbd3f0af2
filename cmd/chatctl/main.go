// Package main is the entry point for the chatctl terminal client.
package main

import "github.com/intentbot/chat-client/internal/cli"

func main() {
	cli.Execute()
}
