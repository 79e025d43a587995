package motd

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tstnetwork/tstnode/internal/config"
	"github.com/tstnetwork/tstnode/internal/model"
	"github.com/tstnetwork/tstnode/internal/repository/redisstore"
)

// Defaults served when the operator never stored a message.
const (
	defaultMOTD = "Welcome to the TST network!"
	notice      = "TST is a test network. Coins have no value."
)

// Package identifies the node software.
type Package struct {
	Name       string `json:"name"`
	Version    string `json:"version"`
	Author     string `json:"author"`
	Licence    string `json:"licence"`
	Repository string `json:"repository"`
}

// Currency describes the currency the node tracks.
type Currency struct {
	AddressPrefix  string `json:"address_prefix"`
	NameSuffix     string `json:"name_suffix"`
	CurrencyName   string `json:"currency_name"`
	CurrencySymbol string `json:"currency_symbol"`
}

// ConstantsView is the wire form of the network constants.
type ConstantsView struct {
	WalletVersion    int     `json:"wallet_version"`
	NonceMaxSize     int     `json:"nonce_max_size"`
	NameCost         uint64  `json:"name_cost"`
	MinWork          uint64  `json:"min_work"`
	MaxWork          uint64  `json:"max_work"`
	WorkFactor       float64 `json:"work_factor"`
	SecondsPerBlock  int     `json:"seconds_per_block"`
	ValidatorPenalty uint64  `json:"validator_penalty"`
}

// Info is the aggregated node status.
type Info struct {
	MOTD    string     `json:"motd"`
	MOTDSet *time.Time `json:"motd_set,omitempty"`

	PublicURL      string `json:"public_url"`
	Debug          bool   `json:"debug_mode"`
	MiningEnabled  bool   `json:"mining_enabled"`
	StakingEnabled bool   `json:"staking_enabled"`

	LastBlock *model.Block `json:"last_block,omitempty"`
	Work      uint64       `json:"work"`

	Package   Package       `json:"package"`
	Constants ConstantsView `json:"constants"`
	Currency  Currency      `json:"currency"`

	Notice string `json:"notice"`
}

// Service aggregates node status.
type Service struct {
	repo      Repository
	state     StateStore
	constants config.Constants
	publicURL string
	version   string
	debug     bool
	logger    *zap.Logger
	now       func() time.Time
}

// New builds the aggregator. debug mirrors the node's NODE_ENV.
func New(repo Repository, state StateStore, constants config.Constants, publicURL, version string, debug bool, logger *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		state:     state,
		constants: constants,
		publicURL: publicURL,
		version:   version,
		debug:     debug,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Get assembles the node status document.
func (s *Service) Get(ctx context.Context) (*Info, error) {
	text, setAt, err := s.state.MOTD(ctx)
	if err != nil {
		return nil, err
	}
	var motdSet *time.Time
	if text == "" {
		text = defaultMOTD
	} else if !setAt.IsZero() {
		motdSet = &setAt
	}

	mining, err := s.state.Flag(ctx, redisstore.FlagMining)
	if err != nil {
		return nil, err
	}
	staking, err := s.state.Flag(ctx, redisstore.FlagStaking)
	if err != nil {
		return nil, err
	}

	last, err := s.repo.LastBlock(ctx)
	if err != nil {
		return nil, err
	}
	work, err := s.state.Work(ctx)
	if err != nil {
		return nil, err
	}
	if work == 0 {
		work = s.constants.MaxWork
	}

	return &Info{
		MOTD:           text,
		MOTDSet:        motdSet,
		PublicURL:      s.publicURL,
		Debug:          s.debug,
		MiningEnabled:  mining,
		StakingEnabled: staking,
		LastBlock:      last,
		Work:           work,
		Package: Package{
			Name:       "tstnode",
			Version:    s.version,
			Author:     "TST Network",
			Licence:    "GPL-3.0",
			Repository: "https://github.com/tstnetwork/tstnode",
		},
		Constants: ConstantsView{
			WalletVersion:    s.constants.WalletVersion,
			NonceMaxSize:     s.constants.NonceMaxSize,
			NameCost:         s.constants.NameCost,
			MinWork:          s.constants.MinWork,
			MaxWork:          s.constants.MaxWork,
			WorkFactor:       s.constants.WorkFactor,
			SecondsPerBlock:  s.constants.SecondsPerBlock,
			ValidatorPenalty: s.constants.ValidatorPenalty,
		},
		Currency: Currency{
			AddressPrefix:  s.constants.AddressPrefix,
			NameSuffix:     s.constants.NameSuffix,
			CurrencyName:   "TST",
			CurrencySymbol: "TST",
		},
		Notice: notice,
	}, nil
}

// Set replaces the stored message of the day.
func (s *Service) Set(ctx context.Context, text string) error {
	if err := s.state.SetMOTD(ctx, text, s.now()); err != nil {
		return err
	}
	s.logger.Info("motd updated", zap.Int("length", len(text)))
	return nil
}
