// Command ltlsynth synthesizes an LTL/Boolean formula separating a set
// of positive and negative traces, using one of three search policies.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
