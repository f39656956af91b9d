package main

import (
	"runtime"

	"github.com/hadisv/glcourse/cmd"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cmd.Execute()
}
