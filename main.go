package main

import (
	_ "embed"

	"github.com/takvimhub/event-calendar-service/cmd"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(c)
}
