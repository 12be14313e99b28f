// hal-simplicity - Simplicity program inspector and sighash tool
//
// hal-simplicity resolves Simplicity programs from their base64 or hex
// encodings, reports their identity hashes and taproot addresses,
// decodes Elements transactions, and computes and signs the digest a
// Taproot-Simplicity input commits to.
//
// Example usage:
//
//	# Decode a program and derive its addresses
//	hal-simplicity info <base64> [witness-hex]
//
//	# Compute the sighash for input 0 and sign it
//	hal-simplicity sighash --secret-key <hex> --utxo <script:asset:value> \
//	  <tx-hex> 0 <cmr> <control-block-hex>
//
//	# Decode an Elements transaction
//	hal-simplicity tx-decode <tx-hex>
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/suffix-labs/hal-simplicity/pkg/api"
	"github.com/suffix-labs/hal-simplicity/pkg/elements"
	"github.com/suffix-labs/hal-simplicity/pkg/program"
)

const version = "0.1.0"

var log = logrus.New()

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	command := os.Args[1]

	switch command {
	case "info":
		cmdInfo(os.Args[2:])
	case "sighash":
		cmdSighash(os.Args[2:])
	case "tx-decode":
		cmdTxDecode(os.Args[2:])
	case "keypair":
		cmdKeypair(os.Args[2:])
	case "version":
		fmt.Printf("hal-simplicity v%s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hal-simplicity - Simplicity program inspector and sighash tool

Usage:
  hal-simplicity <command> [options] [arguments]

Commands:
  info <program> [witness]     Decode a Simplicity program (base64 or hex) and
                               report its CMR, type arrow and taproot addresses.
                               With witness data, also its AMR and IHR.
  sighash <tx> <input-idx> <cmr> <control-block>
                               Compute the Simplicity sighash of one input.
                               Optionally sign it and/or verify a signature.
  tx-decode <tx>               Decode an Elements transaction from hex.
  keypair generate             Generate a random Schnorr keypair.
  version                      Show version information.
  help                         Show this help message.

Common options:
  -y          output YAML instead of JSON
  -v          verbose logging

sighash options:
  --utxo <script:asset:value>  spent output for each input, repeatable, in
                               input order; asset and value may be explicit or
                               confidential commitments
  --genesis-hash <hex>         genesis hash of the chain (defaults to the
                               regtest chain used by the Simplicity web IDE)
  --secret-key <hex>           sign the digest with this key
  --public-key <hex>           x-only key to verify against
  --signature <hex>            signature to verify (requires --public-key)`)
}

// stringList collects repeatable string flags in order.
type stringList []string

func (s *stringList) String() string { return fmt.Sprint(*s) }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func commonFlags(fs *flag.FlagSet) (yamlOut, verbose *bool) {
	yamlOut = fs.Bool("y", false, "output YAML instead of JSON")
	verbose = fs.Bool("v", false, "verbose logging")
	return yamlOut, verbose
}

func applyVerbosity(verbose bool) {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
}

func fail(err error) {
	log.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	yamlOut, verbose := commonFlags(fs)
	fs.Parse(args)
	applyVerbosity(*verbose)

	rest := fs.Args()
	if len(rest) < 1 || len(rest) > 2 {
		fmt.Fprintln(os.Stderr, "Usage: hal-simplicity info [options] <program> [witness]")
		os.Exit(1)
	}

	var p *program.Program
	var err error
	if len(rest) == 2 {
		log.WithField("witness_len", len(rest[1])).Debug("resolving program with witness")
		p, err = program.ResolveWithWitness(rest[0], rest[1])
	} else {
		log.Debug("resolving program without witness")
		p, err = program.Resolve(rest[0])
	}
	if err != nil {
		fail(fmt.Errorf("parsing program: %w", err))
	}

	if err := api.WriteOutput(os.Stdout, api.ProgramInfoFor(p), *yamlOut); err != nil {
		fail(err)
	}
}

func cmdSighash(args []string) {
	fs := flag.NewFlagSet("sighash", flag.ExitOnError)
	yamlOut, verbose := commonFlags(fs)
	var utxos stringList
	fs.Var(&utxos, "utxo", "spent output descriptor, repeatable")
	genesisHash := fs.String("genesis-hash", "", "genesis hash of the chain")
	secretKey := fs.String("secret-key", "", "secret key to sign with")
	publicKey := fs.String("public-key", "", "x-only public key to verify against")
	signature := fs.String("signature", "", "signature to verify")
	fs.Parse(args)
	applyVerbosity(*verbose)

	rest := fs.Args()
	if len(rest) != 4 {
		fmt.Fprintln(os.Stderr,
			"Usage: hal-simplicity sighash [options] <tx> <input-idx> <cmr> <control-block>")
		os.Exit(1)
	}

	inputIndex, err := strconv.ParseUint(rest[1], 10, 32)
	if err != nil {
		fail(fmt.Errorf("parsing input-idx: %w", err))
	}

	log.WithFields(logrus.Fields{
		"input_idx": inputIndex,
		"utxos":     len(utxos),
	}).Debug("assembling sighash environment")

	info, err := api.Sighash(api.SighashRequest{
		TxHex:        rest[0],
		InputIndex:   uint32(inputIndex),
		Cmr:          rest[2],
		ControlBlock: rest[3],
		GenesisHash:  *genesisHash,
		SecretKey:    *secretKey,
		PublicKey:    *publicKey,
		Signature:    *signature,
		InputUtxos:   utxos,
	})
	if err != nil {
		fail(err)
	}

	if err := api.WriteOutput(os.Stdout, info, *yamlOut); err != nil {
		fail(err)
	}
}

func cmdTxDecode(args []string) {
	fs := flag.NewFlagSet("tx-decode", flag.ExitOnError)
	yamlOut, verbose := commonFlags(fs)
	network := fs.String("network", "elementsregtest", "network for address rendering")
	fs.Parse(args)
	applyVerbosity(*verbose)

	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: hal-simplicity tx-decode [options] <tx>")
		os.Exit(1)
	}

	params, err := networkParams(*network)
	if err != nil {
		fail(err)
	}

	tx, err := elements.ParseTxHex(rest[0])
	if err != nil {
		fail(fmt.Errorf("decoding transaction: %w", err))
	}

	if err := api.WriteOutput(os.Stdout, api.TxInfoFor(tx, params), *yamlOut); err != nil {
		fail(err)
	}
}

func networkParams(name string) (elements.AddressParams, error) {
	switch name {
	case "liquid":
		return elements.Liquid, nil
	case "liquidtestnet":
		return elements.LiquidTestnet, nil
	case "elementsregtest":
		return elements.ElementsRegtest, nil
	default:
		return elements.AddressParams{}, fmt.Errorf("unknown network %q", name)
	}
}

func cmdKeypair(args []string) {
	if len(args) < 1 || args[0] != "generate" {
		fmt.Fprintln(os.Stderr, "Usage: hal-simplicity keypair generate [options]")
		os.Exit(1)
	}

	fs := flag.NewFlagSet("keypair generate", flag.ExitOnError)
	yamlOut, verbose := commonFlags(fs)
	fs.Parse(args[1:])
	applyVerbosity(*verbose)

	info, err := api.GenerateKeypair()
	if err != nil {
		fail(err)
	}

	if err := api.WriteOutput(os.Stdout, info, *yamlOut); err != nil {
		fail(err)
	}
}
