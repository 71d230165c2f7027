package main

import "github.com/chat-client/v2/cmd/chat-auth-cli/cmd"

func main() {
	cmd.Execute()
}
