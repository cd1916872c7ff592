package main

import "github.com/darksv/go-chromaprint/cmd"

func main() {
	cmd.Execute()
}
