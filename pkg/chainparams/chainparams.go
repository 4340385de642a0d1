// Package chainparams registers the OpenSY networks with btcd so addresses
// can be decoded with btcutil.
package chainparams

import (
	"errors"
	"sync"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

const (
	// 网络魔数: 'S' 'Y' 'L' 'M' / 'S' 'Y' 'L' 'T'，小端序
	mainNetMagic wire.BitcoinNet = 0x4d4c5953
	testNetMagic wire.BitcoinNet = 0x544c5953
)

var (
	MainNetParams = newParams("opensy-mainnet", mainNetMagic, "9633", 63, 64, 128, "syl")
	TestNetParams = newParams("opensy-testnet", testNetMagic, "19633", 125, 196, 239, "tsyl")

	registerOnce sync.Once
	registerErr  error
)

func newParams(name string, net wire.BitcoinNet, port string, pkh, sh, wif byte, hrp string) chaincfg.Params {
	var base chaincfg.Params
	if net == mainNetMagic {
		base = chaincfg.MainNetParams
	} else {
		base = chaincfg.TestNet3Params
	}
	base.Name = name
	base.Net = net
	base.DefaultPort = port
	base.DNSSeeds = nil
	base.Checkpoints = nil
	base.PubKeyHashAddrID = pkh
	base.ScriptHashAddrID = sh
	base.PrivateKeyID = wif
	base.Bech32HRPSegwit = hrp
	return base
}

// Register makes both networks known to btcutil. Safe to call many times.
func Register() error {
	registerOnce.Do(func() {
		for _, p := range []*chaincfg.Params{&MainNetParams, &TestNetParams} {
			if err := chaincfg.Register(p); err != nil && !errors.Is(err, chaincfg.ErrDuplicateNet) {
				registerErr = err
				return
			}
		}
	})
	return registerErr
}

// Address kinds reported by Describe.
const (
	KindP2PKH   = "p2pkh"
	KindP2SH    = "p2sh"
	KindP2WPKH  = "p2wpkh"
	KindP2WSH   = "p2wsh"
	KindP2TR    = "p2tr"
	KindUnknown = "unknown"
)

// AddressInfo is what can be learnt from an address string alone.
type AddressInfo struct {
	Address string `json:"address"`
	Valid   bool   `json:"valid"`
	Kind    string `json:"kind"`
	Network string `json:"network,omitempty"`
}

// Describe decodes addr against mainnet then testnet. An address neither
// network accepts is returned with Valid false.
func Describe(addr string) AddressInfo {
	info := AddressInfo{Address: addr, Kind: KindUnknown}
	if err := Register(); err != nil {
		return info
	}
	for _, p := range []*chaincfg.Params{&MainNetParams, &TestNetParams} {
		decoded, err := btcutil.DecodeAddress(addr, p)
		if err != nil || !decoded.IsForNet(p) {
			continue
		}
		info.Valid = true
		info.Network = p.Name
		info.Kind = kindOf(decoded)
		return info
	}
	return info
}

func kindOf(a btcutil.Address) string {
	switch a.(type) {
	case *btcutil.AddressPubKeyHash:
		return KindP2PKH
	case *btcutil.AddressScriptHash:
		return KindP2SH
	case *btcutil.AddressWitnessPubKeyHash:
		return KindP2WPKH
	case *btcutil.AddressWitnessScriptHash:
		return KindP2WSH
	case *btcutil.AddressTaproot:
		return KindP2TR
	default:
		return KindUnknown
	}
}
