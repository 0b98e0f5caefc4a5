package assets

import (
	_ "embed"
)

// HelpText contains the workflow help shown by the in-app help window.
//
//go:embed help.txt
var HelpText string
