package main

import "github.com/divya20032004/custom-event-calendar/cmd"

func main() {
	cmd.Execute()
}
