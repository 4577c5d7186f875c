// Command onvoc manages TSV-backed controlled vocabularies.
package main

import "github.com/onvoc/onvoc/cmd"

func main() {
	cmd.Execute()
}
