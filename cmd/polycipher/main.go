// Command polycipher encrypts, decrypts and attacks classical shift and
// Vigenère ciphers over the built-in English and Hebrew alphabets.
//
//	polycipher caesar --shift 3 "hello"
//	polycipher encrypt --key lemon --in plain.txt --out cipher.txt
//	polycipher freq --exclude-separator < cipher.txt
//	polycipher crib --crib temple --in cipher.txt
//	polycipher recover --in cipher.txt --max 12
//
// Settings come from --config (YAML), POLYCIPHER_* environment variables and
// flags, in increasing precedence.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
