package main

import "github.com/LocoDelAssembly/taxonpages/cmd"

func main() {
	cmd.Execute()
}
