// Command mpttrie is a small inspection and manipulation tool for a
// LevelDB-backed Merkle Patricia Trie: put, get, delete a single entry, or
// print the root hash of a trie rooted at a given hash.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"

	"github.com/eth2030/mpt/internal/log"
	"github.com/eth2030/mpt/trie"
)

func main() {
	dataDir := flag.String("datadir", "./mpttrie-data", "LevelDB directory backing the trie")
	root := flag.String("root", "", "hex root hash to operate on (empty means the empty trie)")
	logLevel := flag.String("log-level", "info", "log verbosity (debug, info, warn, error)")
	flag.Parse()

	log.SetDefault(log.New(log.ParseLevel(*logLevel)))

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	backend, err := trie.OpenLevelDBStore(*dataDir)
	if err != nil {
		fatalf("open backend: %v", err)
	}
	defer backend.Close()

	rootHash := trie.EmptyRootHash
	if *root != "" {
		rootHash = common.HexToHash(*root)
	}
	tr, err := trie.NewWithRoot(backend, rootHash)
	if err != nil {
		fatalf("load trie at root %s: %v", rootHash.Hex(), err)
	}

	switch cmd := flag.Arg(0); cmd {
	case "get":
		if flag.NArg() != 2 {
			usage()
			os.Exit(2)
		}
		value, ok, err := tr.Get([]byte(flag.Arg(1)))
		if err != nil {
			fatalf("get: %v", err)
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "key not found")
			os.Exit(1)
		}
		fmt.Println(hex.EncodeToString(value))

	case "put":
		if flag.NArg() != 3 {
			usage()
			os.Exit(2)
		}
		newTrie, err := tr.Put([]byte(flag.Arg(1)), []byte(flag.Arg(2)))
		if err != nil {
			fatalf("put: %v", err)
		}
		newRoot, err := newTrie.Root()
		if err != nil {
			fatalf("root: %v", err)
		}
		fmt.Println(newRoot.Hex())

	case "delete":
		if flag.NArg() != 2 {
			usage()
			os.Exit(2)
		}
		newTrie, err := tr.Delete([]byte(flag.Arg(1)))
		if err != nil {
			fatalf("delete: %v", err)
		}
		newRoot, err := newTrie.Root()
		if err != nil {
			fatalf("root: %v", err)
		}
		fmt.Println(newRoot.Hex())

	case "root":
		newRoot, err := tr.Root()
		if err != nil {
			fatalf("root: %v", err)
		}
		fmt.Println(newRoot.Hex())

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mpttrie [-datadir dir] [-root hash] <get|put|delete|root> [key] [value]")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
