// Command geastream drives the gea package from the command line: it
// builds a GEA-1 or GEA-2 cipher instance from a key, IV and direction
// and either prints raw keystream or XORs a hex payload, printing the
// result as hex. It performs no algorithmic work itself — everything
// it does is delegate to the gea package and report the result.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/P1sec/gea-implementation"
)

func main() {
	var algorithm = pflag.StringP("algorithm", "a", "gea1", "Cipher to use: gea1 or gea2.")
	var keyHex = pflag.StringP("key", "k", "0000000000000000", "64-bit session key, hex.")
	var ivHex = pflag.StringP("iv", "i", "00000000", "32-bit IV, hex.")
	var downlink = pflag.BoolP("downlink", "d", false, "Use the downlink direction (default is uplink).")
	var numBytes = pflag.IntP("bytes", "n", 0, "Generate this many bytes of pure keystream.")
	var payloadHex = pflag.StringP("payload", "p", "", "Hex payload to encrypt/decrypt instead of generating keystream.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: geastream [options]\n\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	var key, iv, dir, err = parseInputs(*keyHex, *ivHex, *downlink)
	if err != nil {
		log.Error("invalid input", "err", err)
		os.Exit(1)
	}

	log.Info("initializing cipher", "algorithm", *algorithm, "direction", dir)

	var stream interface {
		GenerateStream(int) []byte
		CryptStream([]byte) []byte
	}

	switch *algorithm {
	case "gea1":
		stream = gea.NewGEA1(key, iv, dir)
	case "gea2":
		stream = gea.NewGEA2(key, iv, dir)
	default:
		log.Error("unknown algorithm", "algorithm", *algorithm)
		os.Exit(1)
	}

	if *payloadHex != "" {
		var payload, decodeErr = hex.DecodeString(*payloadHex)
		if decodeErr != nil {
			log.Error("invalid payload hex", "err", decodeErr)
			os.Exit(1)
		}

		var out = stream.CryptStream(payload)
		log.Info("crypt complete", "bytes", len(out))
		fmt.Println(hex.EncodeToString(out))
		return
	}

	var out = stream.GenerateStream(*numBytes)
	log.Info("keystream generated", "bytes", len(out))
	fmt.Println(hex.EncodeToString(out))
}

func parseInputs(keyHex, ivHex string, downlink bool) (uint64, uint32, gea.Direction, error) {
	var keyBytes, err = hex.DecodeString(keyHex)
	if err != nil {
		return 0, 0, gea.Uplink, fmt.Errorf("key: %w", err)
	}
	if len(keyBytes) != 8 {
		return 0, 0, gea.Uplink, fmt.Errorf("key must be 8 bytes (16 hex digits), got %d bytes", len(keyBytes))
	}

	var ivBytes []byte
	ivBytes, err = hex.DecodeString(ivHex)
	if err != nil {
		return 0, 0, gea.Uplink, fmt.Errorf("iv: %w", err)
	}
	if len(ivBytes) != 4 {
		return 0, 0, gea.Uplink, fmt.Errorf("iv must be 4 bytes (8 hex digits), got %d bytes", len(ivBytes))
	}

	var key uint64
	for _, b := range keyBytes {
		key = key<<8 | uint64(b)
	}

	var iv uint32
	for _, b := range ivBytes {
		iv = iv<<8 | uint32(b)
	}

	var dir = gea.Uplink
	if downlink {
		dir = gea.Downlink
	}

	return key, iv, dir, nil
}
