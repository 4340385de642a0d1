package main

import "opensy-web/cmd/explorer-cli/cmd"

func main() {
	cmd.Execute()
}
