// Package main provides the entry point for the macenroll CLI tool.
package main

func main() {
	Execute()
}
