// leadctl talks to a running lead API: it reads the company info, submits
// test leads through the same client the web shell uses, mints admin tokens
// and downloads the quote export.
//
// Usage:
//
//	leadctl company-info
//	leadctl quote --client-name "Ion" --email ion@example.md ...
//	leadctl admin-token --ttl 1h
//	leadctl export --token $TOKEN --out quotes.xlsx
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
