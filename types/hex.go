package types

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// HexBytes is a byte slice that (de)serializes as a "0x"-prefixed hex
// string in JSON, the wire format relayers use for submitted updates.
type HexBytes []byte

func (hb HexBytes) String() string {
	return "0x" + hex.EncodeToString(hb)
}

func (hb HexBytes) MarshalJSON() ([]byte, error) {
	s := hb.String()
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	out = append(out, s...)
	out = append(out, '"')
	return out, nil
}

func (hb *HexBytes) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("types: invalid hex string %s", data)
	}
	decoded, err := HexToBytes(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*hb = decoded
	return nil
}

// HexToBytes decodes an optionally "0x"-prefixed hex string.
func HexToBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	return hex.DecodeString(s)
}

// MustRootFromHex is a test/fixture helper: panics on malformed input.
func MustRootFromHex(s string) Root {
	b, err := HexToBytes(s)
	if err != nil {
		panic(err)
	}
	var r Root
	if len(b) != len(r) {
		panic(fmt.Sprintf("types: expected %d byte root, got %d", len(r), len(b)))
	}
	copy(r[:], b)
	return r
}

// MustPublicKeyFromHex is a test/fixture helper: panics on malformed input.
func MustPublicKeyFromHex(s string) PublicKey {
	b, err := HexToBytes(s)
	if err != nil {
		panic(err)
	}
	var pk PublicKey
	if len(b) != len(pk) {
		panic(fmt.Sprintf("types: expected %d byte pubkey, got %d", len(pk), len(b)))
	}
	copy(pk[:], b)
	return pk
}

// marshalFixedHex renders a fixed-size byte array the way the teacher's
// relayer-facing JSON expects: a "0x"-prefixed hex string, via HexBytes.
func marshalFixedHex(b []byte) ([]byte, error) {
	return HexBytes(b).MarshalJSON()
}

// unmarshalFixedHex decodes data into out via HexBytes, rejecting any
// value whose decoded length doesn't match the fixed-size field.
func unmarshalFixedHex(data []byte, out []byte) error {
	var hb HexBytes
	if err := hb.UnmarshalJSON(data); err != nil {
		return err
	}
	if len(hb) != len(out) {
		return fmt.Errorf("types: expected %d bytes, got %d", len(out), len(hb))
	}
	copy(out, hb)
	return nil
}
