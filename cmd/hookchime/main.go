// Package main is the entry point for the hookchime notification hook.
package main

func main() {
	Execute()
}
