package main

import "github.com/gaurav-prasanna/ogmedia/cmd"

func main() {
	cmd.Execute()
}
