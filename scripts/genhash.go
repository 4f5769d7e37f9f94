package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Generates a bcrypt hash for seeding accounts by hand.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password> [cost]")
		os.Exit(1)
	}

	cost := bcrypt.DefaultCost
	if len(os.Args) > 2 {
		fmt.Sscanf(os.Args[2], "%d", &cost)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}
