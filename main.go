// Command vcrename renames files migrated between document stores by
// deriving a canonical filename from a source path rooted at a person's
// directory.
package main

import "github.com/anthonythorne/visualcare-file-migration-renamer/cmd"

func main() {
	cmd.Execute()
}
