package main

import "github.com/banyumedia/fotovid/cmd"

func main() {
	cmd.Execute()
}
