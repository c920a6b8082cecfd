package main

import (
	"go_keystore_rotation/cmd"
)

func main() {
	cmd.Execute()
}
