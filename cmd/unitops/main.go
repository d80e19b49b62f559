package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// Environment defaults such as UNITOPS_COST_YEAR may live in a .env
	// file next to the working directory. A missing file is fine.
	_ = godotenv.Load()

	Execute()
}
