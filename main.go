// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ifem-inspect reads finite-element result sets and post-processes sampled
// field data into derived quantities (components, coordinates, derivatives,
// strains and stresses) for printing or plotting
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
