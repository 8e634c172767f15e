package main

import "place-distance-service/cmd/distform/command"

func main() {
	command.Execute()
}
