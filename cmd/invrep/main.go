// cmd/invrep/main.go
package main

import (
	"invrep/internal/app"
	"invrep/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
