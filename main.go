package main

import (
	"github.com/joshuak94/iGenVar/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
