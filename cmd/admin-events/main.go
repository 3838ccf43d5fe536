package main

import (
	"os"

	"github.com/happysysadm/get-administrativeevent/cmd/admin-events/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
