package main

import (
	"fmt"
	"os"

	network "github.com/todoapp/network-go"
)

func main() {
	if err := network.Main(&network.Options{}); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
