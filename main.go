package main

import "github.com/alexiusacademia/golcg/cmd"

func main() {
	cmd.Execute()
}
