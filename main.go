package main

import "github.com/theopenlane/mailaudit/cmd"

func main() {
	cmd.Execute()
}
