package main

import "empreg/internal/app/server"

func main() {
	server.Run()
}
