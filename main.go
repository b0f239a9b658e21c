package main

import "bom-matcher/cmd"

func main() {
	cmd.Execute()
}
