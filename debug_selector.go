package main

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

func main() {
	sigs := []string{
		"obtenerContadorPrestamos()",
		"contadorPrestamos()",
		"crearPrestamo(uint256,uint256,uint256)",
		"financiarPrestamo(uint256)",
		"obtenerPrestamo(uint256)",
	}

	for _, sig := range sigs {
		hash := crypto.Keccak256([]byte(sig))
		selector := hex.EncodeToString(hash[:4])
		fmt.Printf("%s: 0x%s\n", sig, selector)
	}
}
