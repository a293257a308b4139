package main

import "fmt"

// Run executes the languages command.
func (c *LanguagesCmd) Run(deps *Dependencies) error {
	for _, code := range deps.Languages.Languages() {
		fmt.Fprintln(deps.Stdout, code)
	}
	return nil
}
