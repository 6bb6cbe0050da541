// Package testutils provides fixtures shared by package tests.
package testutils

import (
	"bytes"

	"github.com/stellar/go/strkey"
)

// Deterministic StrKey addresses derived from fixed payloads.
var (
	AccountA  = strkey.MustEncode(strkey.VersionByteAccountID, bytes.Repeat([]byte{0x01}, 32))
	AccountB  = strkey.MustEncode(strkey.VersionByteAccountID, bytes.Repeat([]byte{0x02}, 32))
	AccountC  = strkey.MustEncode(strkey.VersionByteAccountID, bytes.Repeat([]byte{0x03}, 32))
	ContractA = strkey.MustEncode(strkey.VersionByteContract, bytes.Repeat([]byte{0x0a}, 32))
	ContractB = strkey.MustEncode(strkey.VersionByteContract, bytes.Repeat([]byte{0x0b}, 32))
)
