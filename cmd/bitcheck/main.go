// Command bitcheck runs the goRoles enumeration validator as a standalone
// vet tool.
//
//	go build -o bitcheck ./cmd/bitcheck
//	go vet -vettool=./bitcheck ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/MrEthical07/goRoles/bitcheck"
)

func main() {
	singlechecker.Main(bitcheck.Analyzer)
}
