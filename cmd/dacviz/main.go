// Command dacviz prints replayable traces of divide-and-conquer algorithms.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/dacviz/internal/app"
)

func main() {
	// A missing .env is fine; the environment and flags still apply.
	_ = godotenv.Load()

	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
