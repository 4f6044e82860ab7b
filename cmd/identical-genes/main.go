// cmd/identical-genes/main.go
package main

import (
	"github.com/rnharmening/DupGeneIdentifier/internal/appshell"
	"github.com/rnharmening/DupGeneIdentifier/internal/resolveapp"
)

func main() { appshell.Main(resolveapp.Run) }
