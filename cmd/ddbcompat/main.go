/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import "github.com/suparena/ddbcompat/cmd/ddbcompat/cmd"

func main() {
	cmd.Execute()
}
