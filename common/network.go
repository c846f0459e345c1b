package common

// Network is the host ledger network the contract is deployed on.
type Network string

const (
	NetworkMainnet  Network = "mainnet"
	NetworkTestnet  Network = "testnet"
	NetworkLocalnet Network = "localnet"
)

var supportedNetworks = map[Network]struct{}{
	NetworkMainnet:  {},
	NetworkTestnet:  {},
	NetworkLocalnet: {},
}

func (n Network) IsSupported() bool {
	_, ok := supportedNetworks[n]
	return ok
}

func (n Network) String() string {
	return string(n)
}
