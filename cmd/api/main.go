package main

import "github.com/BruksfildServices01/booking-core/internal/cli"

func main() {
	cli.Execute()
}
