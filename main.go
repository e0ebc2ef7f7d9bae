package main

import "swim/internal/cli"

func main() {
    cli.Execute()
}
