package main

import (
	"github.com/chandemahtab/blog-api/cmd"
)

func main() {
	cmd.Execute()
}
