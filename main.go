package main

import (
	"student-wellness-system/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
