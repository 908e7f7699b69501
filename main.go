package main

import "github.com/intakeai/intakeai_backend/cmd"

func main() {
	cmd.Execute()
}
