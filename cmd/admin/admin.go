package main

import (
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/cmd/admin/command"
)

func main() {
	command.Execute()
}
