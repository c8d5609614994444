package main

import "shelfd/cmd"

func main() {
	cmd.Execute()
}
