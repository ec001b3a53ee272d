package main

import (
	"github.com/connectctl/connectctl/cmd"
)

var connectctlVersion string

func main() {
	cmd.Execute(connectctlVersion)
}
