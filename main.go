package main

import "github.com/ASHRREAL/guelph-schedule-generator/cmd"

func main() {
	cmd.Execute()
}
