package main

import "pbxsync/cmd"

func main() {
	cmd.Execute()
}
