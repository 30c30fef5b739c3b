package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spacepet-lab/client/config"
	"github.com/spacepet-lab/client/internal/client"
	"github.com/spacepet-lab/client/internal/domain"
	"github.com/spacepet-lab/client/internal/entity"
	"github.com/spacepet-lab/client/internal/repository"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/internal/wallet"
	"github.com/spacepet-lab/client/pkg/api"
	"github.com/spacepet-lab/client/pkg/logger"
	"github.com/spacepet-lab/client/pkg/xcontext"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	ctx context.Context
	app *cli.App

	configs config.Configs

	apiGenerator api.Generator

	sessionRepo repository.SessionRepository
	receiptRepo repository.ReceiptRepository

	store  *session.Store
	signer wallet.Signer

	authDomain        domain.AuthDomain
	questDomain       domain.QuestDomain
	defiDomain        domain.DefiDomain
	gasDomain         domain.GasDomain
	leaderboardDomain domain.LeaderboardDomain
	inventoryDomain   domain.InventoryDomain
}

// load wires everything a command needs. Commands run it first, the order of
// the steps matters.
func (s *srv) load(cctx *cli.Context) error {
	if err := s.loadConfig(cctx); err != nil {
		return err
	}

	s.loadLogger(cctx)
	s.loadEndpoint()

	if err := s.loadDatabase(); err != nil {
		return err
	}

	s.loadRepos()

	if err := s.loadSigner(); err != nil {
		return err
	}

	s.loadDomains()
	return nil
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	if urls := cctx.StringSlice("backend"); len(urls) > 0 {
		cfg.Backend.URLs = urls
	}

	s.configs = cfg
	s.ctx = xcontext.WithConfigs(context.Background(), cfg)
	return nil
}

func (s *srv) loadLogger(cctx *cli.Context) {
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(cctx.String("log-level")))
}

func (s *srv) loadEndpoint() {
	s.apiGenerator = api.NewGenerator(s.configs.Backend.URLs...)
	s.ctx = xcontext.WithHTTPClient(s.ctx, &http.Client{
		Timeout: s.configs.Backend.RequestTimeout,
	})
}

func (s *srv) loadDatabase() error {
	db, err := gorm.Open(sqlite.Open(s.configs.Session.StorePath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("cannot open local store: %w", err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
	if err := entity.MigrateTable(s.ctx); err != nil {
		return fmt.Errorf("cannot migrate local store: %w", err)
	}

	return nil
}

func (s *srv) loadRepos() {
	s.sessionRepo = repository.NewSessionRepository()
	s.receiptRepo = repository.NewReceiptRepository()
	s.store = session.NewStore(s.sessionRepo)
}

func (s *srv) loadSigner() error {
	if s.configs.Wallet.PrivKey == "" {
		return nil
	}

	signer, err := wallet.NewLocalSigner(s.configs.Wallet.PrivKey)
	if err != nil {
		return err
	}

	s.signer = signer
	return nil
}

func (s *srv) loadDomains() {
	authCaller := client.NewAuthCaller(s.apiGenerator)
	questCaller := client.NewQuestCaller(s.apiGenerator)
	defiCaller := client.NewDefiQuestCaller(s.apiGenerator)
	gasCaller := client.NewGasDelegationCaller(s.apiGenerator)
	leaderboardCaller := client.NewLeaderboardCaller(s.apiGenerator)
	inventoryCaller := client.NewInventoryCaller(s.apiGenerator)

	s.authDomain = domain.NewAuthDomain(authCaller, s.store)
	s.questDomain = domain.NewQuestDomain(questCaller)
	s.defiDomain = domain.NewDefiDomain(defiCaller, gasCaller, s.receiptRepo, s.signer)
	s.gasDomain = domain.NewGasDomain(gasCaller, s.receiptRepo)
	s.leaderboardDomain = domain.NewLeaderboardDomain(leaderboardCaller)
	s.inventoryDomain = domain.NewInventoryDomain(inventoryCaller)
}

// currentSession loads the persisted session for authenticated commands.
func (s *srv) currentSession() (*session.Session, error) {
	return s.authDomain.Current(s.ctx)
}

// walletAddress resolves the address a command should act on, preferring the
// explicit flag over the session wallet.
func (s *srv) walletAddress(cctx *cli.Context, sess *session.Session) (string, error) {
	if addr := cctx.String("address"); addr != "" {
		return addr, nil
	}

	if sess.WalletAddress != "" {
		return sess.WalletAddress, nil
	}

	return "", fmt.Errorf("no wallet address, connect one with `wallet connect` or pass --address")
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
