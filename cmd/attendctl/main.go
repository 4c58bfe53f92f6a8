package main

import (
	"github.com/procomhq/attendance-portal/internal/cli"
)

func main() {
	cli.Execute()
}
