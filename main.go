// WAKE darkpool - main entry point
package main

import (
	"crypto/rand"
	"fmt"
	"math"
	"os"

	"github.com/anupsv/wake-darkpool/internal/field"
	"github.com/anupsv/wake-darkpool/protocol/compilerbp"
)

func main() {
	fmt.Println("WAKE Darkpool - Witness-Authenticated Key Exchange for dark pools")
	fmt.Println("------------------------------------------------------------------")
	fmt.Println("Running a Compiler-BP key exchange among 5 parties...")
	fmt.Println()

	n := 5
	minBal := uint64(100)
	balances := make([]uint64, n)
	for i := range balances {
		balances[i] = minBal + uint64(i)*10
	}

	keys, err := compilerbp.RunKeyExchange(rand.Reader, n, minBal, math.MaxUint8, balances)
	if err != nil {
		fmt.Fprintln(os.Stderr, "key exchange failed:", err)
		os.Exit(1)
	}

	fmt.Printf("%d parties derived a shared key (party 0's: %s)\n", len(keys), field.ElementHex(keys[0]))
	fmt.Println()
	fmt.Println("See cmd/wakebench for timing sweeps across protocol/backend combinations,")
	fmt.Println("and the protocol/* packages for the compiler and optimized WAKE variants.")
}
