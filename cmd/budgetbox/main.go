package main

import "github.com/vaibhavharit14/BudgetBox/internal/client/cli"

func main() {
	cli.Execute()
}
