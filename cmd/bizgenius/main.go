package main

import (
	"github.com/acg-data/bizgenius-sub001/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cli.Execute()
}
