package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/salted/internal/domain"
)

func trimHexPrefix(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// parseSalt reads up to 32 bytes of hex, left-padded like a uint256
func parseSalt(s string) (common.Hash, error) {
	raw := trimHexPrefix(s)
	if raw == "" {
		return common.Hash{}, fmt.Errorf("%w: empty", domain.ErrInvalidSalt)
	}
	if len(raw)%2 == 1 {
		raw = "0" + raw
	}
	b, err := hexutil.Decode("0x" + raw)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %q is not hex", domain.ErrInvalidSalt, s)
	}
	if len(b) > common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: %d bytes, at most %d allowed", domain.ErrInvalidSalt, len(b), common.HashLength)
	}
	return common.BytesToHash(b), nil
}

// parsePayload decodes init code given inline or as a file holding hex text
func parsePayload(inline, file string) ([]byte, error) {
	switch {
	case inline != "" && file != "":
		return nil, fmt.Errorf("%w: give init code inline or with --file, not both", domain.ErrInvalidPayload)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read init code: %w", err)
		}
		inline = string(data)
	}

	raw := trimHexPrefix(inline)
	if raw == "" {
		return []byte{}, nil
	}
	b, err := hexutil.Decode("0x" + raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return b, nil
}

// parseAmount reads a wei amount in decimal or 0x-prefixed hex
func parseAmount(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(uint256.Int), nil
	}

	var (
		v   *uint256.Int
		err error
	)
	if strings.HasPrefix(s, "0x") {
		v, err = uint256.FromHex(s)
	} else {
		v, err = uint256.FromDecimal(s)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, s)
	}
	return v, nil
}
