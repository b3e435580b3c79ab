package main

import (
	"github.com/fatih/color"
)

// Status colors. fatih/color disables them when output is not a terminal
// or NO_COLOR is set.
var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed, color.Bold)
	hintColor = color.New(color.FgCyan)
)
