package main

import "github.com/oshokin/tzalign/cmd/tzalign-server/cmd"

func main() {
	cmd.Execute()
}
