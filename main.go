package main

import "github.com/michalbaturko-lang/bazarovyregal/cmd"

func main() {
	cmd.Execute()
}
