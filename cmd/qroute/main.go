// SPDX-License-Identifier: MIT

// Command qroute places and routes circuits described in YAML job files.
//
//	qroute topology --kind ring --qubits 5 --groups 2
//	qroute place -i job.yaml
//	qroute route -i job.yaml -c qroute.yaml -o out.qasm --verify
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qroute:", err)
		os.Exit(1)
	}
}
