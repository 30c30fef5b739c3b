package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "spacepet"
	app.Usage = "Space Pet game client"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path of the toml configuration file",
		},
		&cli.StringSliceFlag{
			Name:  "backend",
			Usage: "Base URLs of the game backend, overrides the configuration",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "One of DEBUG, INFO, WARN, ERROR",
			Value: "INFO",
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:     "login",
			Usage:    "Authenticate with a LINE user id",
			Category: "Account",
			Action:   s.cmdLogin,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "user", Usage: "LINE user id", Required: true},
				&cli.StringFlag{Name: "name", Usage: "Display name"},
				&cli.StringFlag{Name: "picture", Usage: "Profile picture URL"},
			},
		},
		{
			Name:     "whoami",
			Usage:    "Show the current session",
			Category: "Account",
			Action:   s.cmdWhoami,
		},
		{
			Name:     "logout",
			Usage:    "Drop the local session",
			Category: "Account",
			Action:   s.cmdLogout,
		},
		{
			Name:     "pet",
			Usage:    "Select the starter pet",
			Category: "Account",
			Action:   s.cmdSelectPet,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "type", Usage: "Pet type", Required: true},
				&cli.StringFlag{Name: "name", Usage: "Pet name"},
			},
		},
		{
			Name:     "wallet",
			Usage:    "Wallet operations",
			Category: "Account",
			Subcommands: []*cli.Command{
				{
					Name:   "connect",
					Usage:  "Register a wallet address with the backend",
					Action: s.cmdConnectWallet,
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "address", Usage: "Wallet address, defaults to the local signer"},
					},
				},
			},
		},
		{
			Name:     "quest",
			Usage:    "Quest board operations",
			Category: "Quests",
			Subcommands: []*cli.Command{
				{
					Name:   "list",
					Usage:  "Show the quest board",
					Action: s.cmdQuestList,
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "type", Usage: "Filter by quest type"},
						&cli.StringFlag{Name: "category", Usage: "Filter by quest category"},
						&cli.IntFlag{Name: "limit", Usage: "Page size"},
						&cli.IntFlag{Name: "offset", Usage: "Page offset"},
					},
				},
				{
					Name:      "start",
					Usage:     "Start a quest",
					Action:    s.cmdQuestStart,
					ArgsUsage: "<questID>",
				},
				{
					Name:      "claim",
					Usage:     "Claim a quest reward",
					Action:    s.cmdQuestClaim,
					ArgsUsage: "<questID>",
				},
				{
					Name:   "stats",
					Usage:  "Show quest statistics",
					Action: s.cmdQuestStats,
				},
			},
		},
		{
			Name:     "defi",
			Usage:    "DeFi quest operations",
			Category: "Quests",
			Subcommands: []*cli.Command{
				{
					Name:   "portfolio",
					Usage:  "Show the DeFi portfolio and quest eligibility",
					Action: s.cmdDefiPortfolio,
				},
				{
					Name:   "quests",
					Usage:  "List available DeFi quests",
					Action: s.cmdDefiQuests,
				},
				{
					Name:   "recommend",
					Usage:  "Recommend a DeFi quest to participate in",
					Action: s.cmdDefiRecommend,
				},
				{
					Name:   "participate",
					Usage:  "Run a gas-delegated DeFi quest participation",
					Action: s.cmdDefiParticipate,
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "type", Usage: "Quest type: staking, lending or lp_providing", Required: true},
						&cli.StringFlag{Name: "amount", Usage: "Token amount, decimal string", Required: true},
						&cli.IntFlag{Name: "duration", Usage: "Lock duration in days"},
					},
				},
				{
					Name:   "progress",
					Usage:  "Show DeFi quest progress",
					Action: s.cmdDefiProgress,
				},
				{
					Name:      "claim",
					Usage:     "Claim a completed DeFi quest reward",
					Action:    s.cmdDefiClaim,
					ArgsUsage: "<questID>",
				},
				{
					Name:   "stats",
					Usage:  "Show DeFi participation statistics",
					Action: s.cmdDefiStats,
				},
			},
		},
		{
			Name:     "gas",
			Usage:    "Gas delegation service operations",
			Category: "Delegation",
			Subcommands: []*cli.Command{
				{
					Name:   "estimate",
					Usage:  "Estimate the delegated cost of a value transfer",
					Action: s.cmdGasEstimate,
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "to", Usage: "Recipient address", Required: true},
						&cli.StringFlag{Name: "value", Usage: "Transfer value in wei", Required: true},
						&cli.StringFlag{Name: "memo", Usage: "Optional transfer memo"},
					},
				},
				{
					Name:   "eligibility",
					Usage:  "Check whether an address may use gas delegation",
					Action: s.cmdGasEligibility,
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "address", Usage: "Address to check, defaults to the session wallet"},
					},
				},
				{
					Name:   "preview",
					Usage:  "Preview cost, eligibility and quota of a delegated transfer",
					Action: s.cmdGasPreview,
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "to", Usage: "Recipient address", Required: true},
						&cli.StringFlag{Name: "value", Usage: "Transfer value in wei", Required: true},
						&cli.StringFlag{Name: "memo", Usage: "Optional transfer memo"},
					},
				},
				{
					Name:   "stats",
					Usage:  "Show delegation quota statistics",
					Action: s.cmdGasStats,
				},
				{
					Name:   "types",
					Usage:  "List transaction types the fee payer supports",
					Action: s.cmdGasTypes,
				},
				{
					Name:   "fee-payer",
					Usage:  "Show the fee payer address",
					Action: s.cmdGasFeePayer,
				},
				{
					Name:   "history",
					Usage:  "Show locally recorded delegation receipts",
					Action: s.cmdGasHistory,
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "address", Usage: "From address, defaults to the session wallet"},
						&cli.IntFlag{Name: "limit", Usage: "Page size"},
						&cli.IntFlag{Name: "offset", Usage: "Page offset"},
					},
				},
			},
		},
		{
			Name:     "leaderboard",
			Usage:    "Show the ranking board",
			Category: "Social",
			Action:   s.cmdLeaderboard,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "type", Usage: "Ranking type"},
				&cli.StringFlag{Name: "period", Usage: "Ranking period"},
				&cli.IntFlag{Name: "limit", Usage: "Number of rows"},
			},
		},
		{
			Name:     "inventory",
			Usage:    "Item inventory operations",
			Category: "Items",
			Subcommands: []*cli.Command{
				{
					Name:   "list",
					Usage:  "List owned items with rarity and price",
					Action: s.cmdInventoryList,
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "address", Usage: "Wallet address, defaults to the session wallet"},
						&cli.BoolFlag{Name: "equipped", Usage: "Only equipped items"},
					},
				},
				{
					Name:      "equip",
					Usage:     "Equip an item",
					Action:    s.cmdInventoryEquip,
					ArgsUsage: "<itemID>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "address", Usage: "Wallet address, defaults to the session wallet"},
					},
				},
				{
					Name:      "unequip",
					Usage:     "Unequip an item",
					Action:    s.cmdInventoryUnequip,
					ArgsUsage: "<itemID>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "address", Usage: "Wallet address, defaults to the session wallet"},
					},
				},
				{
					Name:      "sell",
					Usage:     "List an item on the marketplace at its derived price",
					Action:    s.cmdInventorySell,
					ArgsUsage: "<itemID>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "address", Usage: "Wallet address, defaults to the session wallet"},
					},
				},
			},
		},
	}

	s.app = app
}
