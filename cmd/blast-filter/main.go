// cmd/blast-filter/main.go
package main

import (
	"github.com/rnharmening/DupGeneIdentifier/internal/appshell"
	"github.com/rnharmening/DupGeneIdentifier/internal/filterapp"
)

func main() { appshell.Main(filterapp.Run) }
