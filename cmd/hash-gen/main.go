package main

import (
	"fmt"
	"log"
	"os"

	"s2dio.backend/pkg/crypto"
)

func resolvePassword(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "admin123"
}

func main() {
	password := resolvePassword(os.Args[1:])

	fmt.Printf("Generating hash for password: %s\n", password)

	hash, err := crypto.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	fmt.Printf("Bcrypt Hash: %s\n", hash)
}
