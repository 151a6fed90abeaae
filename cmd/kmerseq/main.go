// cmd/kmerseq/main.go
package main

import (
	"kmerseq/internal/app"
	"kmerseq/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
