package main

import (
	fakercmd "github.com/bbux-dev/datacraft-faker/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	fakercmd.SetVersionInfo(version, commit)
	fakercmd.Execute()
}
