package main

import (
	"os"

	"github.com/nutriscan-app/nutriscan/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
