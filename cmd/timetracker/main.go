package main

import "github.com/cmlabs-hris/timetracker-backend-go/internal/cli"

func main() {
	cli.Execute()
}
