package main

import (
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/api"
)

func main() {
	api.MainLoop()
}
