package main

import "os"

func main() {
	defer fail()
	os.Exit(1) // want "os.Exit call is forbidden in main function: os.Exit\\(1\\)"
}

func fail() {
	os.Exit(2)
}
