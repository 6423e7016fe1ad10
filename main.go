package main

import "github.com/planet-app/user-services/cmd"

func main() {
	cmd.Execute()
}
