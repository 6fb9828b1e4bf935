package main

import (
	"fmt"
	"os"

	"github.com/nojima/webreq"
)

func main() {
	if err := webreq.Main(&webreq.Options{}); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
