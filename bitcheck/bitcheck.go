// Package bitcheck implements the build-time validator for goRoles
// enumerations as a go/analysis pass.
//
// Const blocks annotated with a //goroles:checked directive are checked for
// the same invariants [goRoles.Validate] enforces at runtime: every constant
// is zero or a power of two, and no two constants in the block share a
// non-zero value. Run it under go vet so that an invalid enumeration fails
// the build rather than the process:
//
//	go build -o bitcheck ./cmd/bitcheck
//	go vet -vettool=./bitcheck ./...
//
// The directive goes on the const block itself:
//
//	//goroles:checked
//	const (
//		PermNone Permission = 0
//		PermSend Permission = 1
//	)
package bitcheck

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"math/bits"
	"strings"

	"golang.org/x/tools/go/analysis"
)

const directive = "//goroles:checked"

// Analyzer checks annotated role const blocks for single-bit values and
// duplicate bit assignments.
var Analyzer = &analysis.Analyzer{
	Name: "bitcheck",
	Doc:  "check that role const blocks declare only zero or power-of-two values with no duplicate bits",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.CONST || !annotated(gen.Doc) {
				continue
			}
			checkConstBlock(pass, gen)
		}
	}
	return nil, nil
}

// annotated reports whether the comment group carries the goroles:checked
// directive. Directive comments are absent from CommentGroup.Text, so the
// raw list is inspected.
func annotated(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.HasPrefix(strings.TrimSpace(c.Text), directive) {
			return true
		}
	}
	return false
}

func checkConstBlock(pass *analysis.Pass, gen *ast.GenDecl) {
	// value -> first declaring name, for collision reporting.
	seen := make(map[uint64]string)

	for _, spec := range gen.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		for _, name := range vs.Names {
			if name.Name == "_" {
				continue
			}

			obj, ok := pass.TypesInfo.Defs[name].(*types.Const)
			if !ok {
				continue
			}

			val := obj.Val()
			if val.Kind() != constant.Int {
				pass.Reportf(name.Pos(), "role %s is not an integer constant", name.Name)
				continue
			}
			u, exact := constant.Uint64Val(val)
			if !exact {
				pass.Reportf(name.Pos(), "role %s value %s is not representable as uint64", name.Name, val.ExactString())
				continue
			}

			if bits.OnesCount64(u) > 1 {
				pass.Reportf(name.Pos(), "role %s has value %d: neither zero nor a power of two", name.Name, u)
				continue
			}
			if u == 0 {
				continue
			}

			if other, taken := seen[u]; taken {
				pass.Reportf(name.Pos(), "role %s collides with %s: both declared with value %d", name.Name, other, u)
				continue
			}
			seen[u] = name.Name
		}
	}
}
