// Command tickcalc converts, compares and aligns tick counts kept in
// different time scales.
package main

import (
	"bufio"
	"os"

	"github.com/sarchlab/ticktime/tickcalc/cmd"
	"github.com/tebeka/atexit"
)

func main() {
	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { _ = out.Flush() })

	atexit.Exit(cmd.Execute(out))
}
