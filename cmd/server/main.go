package main

import "github.com/KevinGeorge100/koco-payroll/internal/app/server"

func main() {
	server.Run()
}
