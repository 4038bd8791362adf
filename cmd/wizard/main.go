package main

import (
	"fmt"
	"os"
)

var server srv

func main() {
	server.loadApp()
	err := server.app.Run(os.Args)
	server.syncLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
