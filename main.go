package main

import "ankadash/cmd"

func main() {
	cmd.Execute()
}
