package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	Backend BackendConfigs `toml:"backend"`
	Session SessionConfigs `toml:"session"`
	Wallet  WalletConfigs  `toml:"wallet"`
	Quest   QuestConfigs   `toml:"quest"`
	Chain   ChainConfigs   `toml:"chain"`
}

type BackendConfigs struct {
	// URLs is the list of base URLs of the game backend. A request is sent to
	// any of them, in random order, until one answers.
	URLs []string `toml:"urls"`

	// IdentityHeader carries the messaging-platform user id on authenticated
	// requests.
	IdentityHeader string `toml:"identity_header"`

	RequestTimeout time.Duration `toml:"request_timeout"`
}

type SessionConfigs struct {
	// StorePath is the sqlite file keeping the local session, the pet cache,
	// and delegation receipts.
	StorePath string `toml:"store_path"`
}

type WalletConfigs struct {
	// PrivKey is the hex-encoded ECDSA key of the local signer. Empty means no
	// wallet is attached and delegation flows stop after the prepare phase.
	PrivKey string `toml:"priv_key"`
}

type QuestConfigs struct {
	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
}

type ChainConfigs struct {
	Chain string `toml:"chain"`

	// For cost display only. The fee payer owns the actual gas policy.
	UseEip1559 bool `toml:"use_eip_1559"`
}

func Default() Configs {
	return Configs{
		Env: "local",
		Backend: BackendConfigs{
			URLs:           []string{"http://localhost:3000/api"},
			IdentityHeader: "x-line-user-id",
			RequestTimeout: 30 * time.Second,
		},
		Session: SessionConfigs{StorePath: "spacepet.db"},
		Quest:   QuestConfigs{DefaultLimit: 20, MaxLimit: 50},
		Chain:   ChainConfigs{Chain: "kaia"},
	}
}

// Load reads the toml file at path over the default configurations. A missing
// path returns the defaults unchanged.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, err
	}

	return cfg, nil
}
