package main

import (
	_ "github.com/joho/godotenv/autoload"

	"itinera/internal/cli"
)

func main() {
	cli.Execute()
}
