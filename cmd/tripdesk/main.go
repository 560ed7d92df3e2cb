package main

import "tripdesk/cmd/tripdesk/cmd"

func main() {
	cmd.Execute()
}
