package main

import "github.com/golangdaddy/roadrash/cmd"

func main() {
	cmd.Execute()
}
