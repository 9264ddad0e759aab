package build

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/omnisig/go-txbuilder/internal/txbuild"
	"github.com/omnisig/go-txbuilder/internal/txbuild/evm"
)

const (
	fileFlag   string = "file"
	familyFlag string = "family"
	vFlag      string = "v"
	rFlag      string = "r"
	sFlag      string = "s"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Builds a signing or signed payload from a transaction JSON file",
		Long: `Reads a loosely-typed transaction JSON document, normalizes it into the
canonical record for the chosen chain family and prints the hex-encoded
signing payload. When v/r/s are supplied, the signed payload is printed
instead.`,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := run(cmd); err != nil {
				log.Fatal().Err(err).Msg("Failed to build transaction")
			}
		},
	}

	cmd.Flags().StringP(fileFlag, "f", "-", "Transaction JSON file, - for stdin")
	cmd.Flags().String(familyFlag, string(txbuild.FamilyEVM), "Chain family (evm, bitcoin)")
	cmd.Flags().Uint64(vFlag, 0, "Signature parity value")
	cmd.Flags().String(rFlag, "", "Signature r as 0x-prefixed hex")
	cmd.Flags().String(sFlag, "", "Signature s as 0x-prefixed hex")

	return cmd
}

func run(cmd *cobra.Command) error {
	file, err := cmd.Flags().GetString(fileFlag)
	if err != nil {
		return err
	}
	family, err := cmd.Flags().GetString(familyFlag)
	if err != nil {
		return err
	}

	data, err := readInput(file)
	if err != nil {
		return errors.Wrap(err, "failed to read transaction JSON")
	}

	tx, err := txbuild.FromJSONForFamily(txbuild.Family(family), data)
	if err != nil {
		return errors.Wrap(err, "failed to ingest transaction")
	}

	rHex, err := cmd.Flags().GetString(rFlag)
	if err != nil {
		return err
	}
	sHex, err := cmd.Flags().GetString(sFlag)
	if err != nil {
		return err
	}

	if rHex == "" && sHex == "" {
		fmt.Println(hexutil.Encode(tx.BuildForSigning()))
		return nil
	}

	evmTx, ok := tx.(*evm.Transaction)
	if !ok {
		return errors.Errorf("signed encoding is not supported for family %q", family)
	}

	v, err := cmd.Flags().GetUint64(vFlag)
	if err != nil {
		return err
	}
	r, err := hexutil.Decode(rHex)
	if err != nil {
		return errors.Wrap(err, "invalid signature r")
	}
	s, err := hexutil.Decode(sHex)
	if err != nil {
		return errors.Wrap(err, "invalid signature s")
	}

	fmt.Println(hexutil.Encode(evmTx.BuildWithSignature(&evm.Signature{V: v, R: r, S: s})))
	return nil
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}
