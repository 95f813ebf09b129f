// Command hashgen imprime el hash bcrypt (cost 10) de cada password recibido
// por argumento, para aprovisionar usuarios a mano en db.json.
//
//	go run ./cmd/hashgen 'Admin@123' 'User@123'
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: hashgen <password> [password...]")
		os.Exit(1)
	}
	for _, plain := range os.Args[1:] {
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hashgen: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: %s\n", plain, hash)
	}
}
