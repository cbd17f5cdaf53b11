// circlecrop - crop an image to a centred circle
//
// circlecrop turns any raster image into a square PNG whose corners are
// transparent outside the inscribed circle.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/circlecrop/internal/cli"
)

func main() {
	cli.Execute()
}
