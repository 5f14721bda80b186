package main

import "github.com/oshokin/tzalign/cmd/tzalign/cmd"

func main() {
	cmd.Execute()
}
