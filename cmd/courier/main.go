package main

import "github.com/zostay/go-courier/cmd/courier/cmd"

func main() {
	cmd.Execute()
}
