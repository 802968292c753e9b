package main

import "digiwork-hub.com/digiwork-hub/cmd"

func main() {
	cmd.Execute()
}
