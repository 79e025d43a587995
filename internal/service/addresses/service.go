package addresses

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tstnetwork/tstnode/internal/apierr"
	"github.com/tstnetwork/tstnode/internal/config"
	"github.com/tstnetwork/tstnode/internal/crypto"
	"github.com/tstnetwork/tstnode/internal/model"
	"github.com/tstnetwork/tstnode/pkg/batcher"
)

// AuthLogRetention is how long auth log entries are kept.
const AuthLogRetention = 30 * 24 * time.Hour

// Service is the address ledger.
type Service struct {
	repo      Repository
	constants config.Constants
	logger    *zap.Logger
	authLog   *batcher.Batcher[model.AuthLogEntry]
	dedup     *authDedup
	now       func() time.Time
}

// New builds the ledger. The auth log is written through a batcher so hot
// mining loops never serialize on the log table.
func New(repo Repository, constants config.Constants, logger *zap.Logger) *Service {
	s := &Service{
		repo:      repo,
		constants: constants,
		logger:    logger,
		dedup:     newAuthDedup(authDedupWindow),
		now:       func() time.Time { return time.Now().UTC() },
	}
	s.authLog = batcher.New(logger.Named("authlog"), repo.InsertAuthLogEntries,
		authLogFlushSize, authLogFlushInterval, authLogFlushRPS)
	return s
}

// Start begins the auth log flusher.
func (s *Service) Start(ctx context.Context) {
	s.authLog.Start(ctx)
}

// Stop flushes and stops the auth log flusher.
func (s *Service) Stop() {
	s.authLog.Stop()
}

// Verify checks a private key against the claimed address, creating the row
// on first contact and pinning the key hash on first authenticated use.
// Every attempt, successful or not, lands in the auth log.
func (s *Service) Verify(ctx context.Context, meta model.RequestMeta, address, privatekey string, logType model.AuthLogType) (bool, *model.Address, error) {
	s.logAttempt(meta, address, logType)

	hash := crypto.HexDigestString(address + privatekey)

	row, err := s.repo.Address(ctx, address)
	if err != nil {
		return false, nil, err
	}

	if row == nil {
		row = &model.Address{
			Address:        address,
			PrivatekeyHash: &hash,
			FirstSeen:      s.now(),
		}
		if err := s.repo.CreateAddress(ctx, row); err != nil {
			return false, nil, err
		}
		return true, row, nil
	}

	if row.PrivatekeyHash == nil {
		if err := s.repo.SetPrivatekeyHash(ctx, address, hash); err != nil {
			return false, nil, err
		}
		row.PrivatekeyHash = &hash
		return true, row, nil
	}

	return !row.Locked && *row.PrivatekeyHash == hash, row, nil
}

// Authenticate derives the v2 address of a private key and verifies it.
// It is the auth entry point of every spending engine.
func (s *Service) Authenticate(ctx context.Context, meta model.RequestMeta, privatekey string, logType model.AuthLogType) (*model.Address, error) {
	if privatekey == "" {
		return nil, apierr.MissingParameter("privatekey")
	}

	address := crypto.MakeV2Address(privatekey, s.constants.AddressPrefix)
	ok, row, err := s.Verify(ctx, meta, address, privatekey, logType)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierr.AuthFailed()
	}
	return row, nil
}

// Get returns an address row. With fetchNames it also counts the names the
// address owns; the count is -1 when names were not requested.
func (s *Service) Get(ctx context.Context, address string, fetchNames bool) (*model.Address, int, error) {
	if address == "" {
		return nil, 0, apierr.MissingParameter("address")
	}
	if !crypto.IsValidAddress(s.constants.AddressPrefix, address) {
		return nil, 0, apierr.InvalidParameter("address")
	}

	row, err := s.repo.Address(ctx, address)
	if err != nil {
		return nil, 0, err
	}
	if row == nil {
		return nil, 0, apierr.AddressNotFound()
	}

	names := -1
	if fetchNames {
		if names, err = s.repo.CountNamesByOwner(ctx, address); err != nil {
			return nil, 0, err
		}
	}
	return row, names, nil
}

// List returns addresses ordered by first appearance.
func (s *Service) List(ctx context.Context, limit, offset int) ([]model.Address, int, error) {
	return s.repo.Addresses(ctx, limit, offset)
}

// Rich returns addresses ordered by balance, highest first.
func (s *Service) Rich(ctx context.Context, limit, offset int) ([]model.Address, int, error) {
	return s.repo.RichAddresses(ctx, limit, offset)
}

// Lookup returns the rows for a list of addresses. Invalid addresses in the
// list fail the whole lookup.
func (s *Service) Lookup(ctx context.Context, addresses []string) ([]model.Address, error) {
	if len(addresses) == 0 {
		return nil, apierr.MissingParameter("addresses")
	}
	for _, a := range addresses {
		if !crypto.IsValidAddress(s.constants.AddressPrefix, a) {
			return nil, apierr.InvalidParameter("addresses")
		}
	}
	return s.repo.LookupAddresses(ctx, addresses)
}

// PruneAuthLog drops auth log entries older than the retention window and
// returns how many were removed.
func (s *Service) PruneAuthLog(ctx context.Context) (int, error) {
	return s.repo.PruneAuthLog(ctx, s.now().Add(-AuthLogRetention))
}
