package main

import (
	"fmt"
	"hash"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/nazrhom/cryptonum/digest"
	"github.com/pborman/options"
	"golang.org/x/xerrors"
)

func runDigest() {
	opts := &struct {
		Algorithm string       `getopt:"-a --algorithm  Digest algorithm: sha1, sha224, sha256, sha384, sha512, sha512-224, sha512-256"`
		Fast      bool         `getopt:"-f --fast       For sha256, use the hardware-accelerated one-shot backend instead of the streaming compressor"`
		Help      options.Help `getopt:"-h --help       Display help"`
	}{Algorithm: "sha256"}

	options.RegisterAndParse(opts)

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		log.Println("reading from stdin...")
	}

	if opts.Fast {
		if opts.Algorithm != "sha256" {
			log.Fatalf("--fast is only meaningful for sha256")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(xerrors.Errorf("reading stdin: %w", err))
		}
		sum := digest.SHA256Fast(data)
		fmt.Printf("%x\n", sum)
		return
	}

	h, err := selectHash(opts.Algorithm)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := io.Copy(h, os.Stdin); err != nil {
		log.Fatal(xerrors.Errorf("reading stdin: %w", err))
	}

	fmt.Printf("%x\n", h.Sum(nil))
}

func selectHash(algorithm string) (hash.Hash, error) {
	switch algorithm {
	case "sha1":
		return digest.NewSHA1(), nil
	case "sha224":
		return digest.NewSHA224(), nil
	case "sha256":
		return digest.NewSHA256(), nil
	case "sha384":
		return digest.NewSHA384(), nil
	case "sha512":
		return digest.NewSHA512(), nil
	case "sha512-224":
		return digest.NewSHA512_224(), nil
	case "sha512-256":
		return digest.NewSHA512_256(), nil
	default:
		return nil, xerrors.Errorf("unknown algorithm %q", algorithm)
	}
}
