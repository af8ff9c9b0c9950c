package main

import "partbuilder/cmd"

func main() {
	cmd.Execute()
}
