package main

import (
	"os"

	"github.com/iburimskiy/rotating-line/internal/app"
)

func main() {
	os.Exit(app.New().Run())
}
