package main

import (
	"os"

	"github.com/scheerer/lightsd/cmd"
	"github.com/scheerer/lightsd/internal/logging"
)

var logger = logging.New("main")

func main() {
	code := cmd.Execute()
	_ = logger.Sync()
	os.Exit(code)
}
