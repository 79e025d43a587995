package transactions

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tstnetwork/tstnode/internal/apierr"
	"github.com/tstnetwork/tstnode/internal/bus"
	"github.com/tstnetwork/tstnode/internal/config"
	"github.com/tstnetwork/tstnode/internal/crypto"
	"github.com/tstnetwork/tstnode/internal/model"
	"github.com/tstnetwork/tstnode/internal/repository/postgres"
)

// Service is the transaction engine.
type Service struct {
	repo      Repository
	auth      Authenticator
	publisher bus.Publisher
	constants config.Constants
	logger    *zap.Logger
	now       func() time.Time
}

// New builds the engine.
func New(repo Repository, auth Authenticator, publisher bus.Publisher, constants config.Constants, logger *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		auth:      auth,
		publisher: publisher,
		constants: constants,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Push authenticates the sender and atomically moves amount to the
// recipient. A recipient of the form "[metaname@]name.tst" routes to the
// current owner of the name; the name form used is recorded on the entry.
func (s *Service) Push(ctx context.Context, meta model.RequestMeta, privatekey, to string, amount uint64, metadata *string) (*model.Transaction, error) {
	if to == "" {
		return nil, apierr.MissingParameter("to")
	}
	if amount < 1 {
		return nil, apierr.InvalidParameter("amount")
	}
	if metadata != nil && *metadata != "" {
		if len(*metadata) > crypto.MaxMetadataLength {
			return nil, apierr.LargeParameter("metadata")
		}
		if !crypto.IsValidMetadata(*metadata) {
			return nil, apierr.InvalidParameter("metadata")
		}
	}

	recipient := to
	var sentMetaname, sentName *string
	if metaname, name, ok := crypto.ParseNameTarget(to, s.constants.NameSuffix); ok {
		row, err := s.repo.Name(ctx, name)
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, apierr.NameNotFound()
		}
		recipient = row.Owner
		sentName = &name
		if metaname != "" {
			sentMetaname = &metaname
		}
	} else if !crypto.IsValidAddress(s.constants.AddressPrefix, to) {
		return nil, apierr.InvalidParameter("to")
	}

	sender, err := s.auth.Authenticate(ctx, meta, privatekey, model.AuthLogAuth)
	if err != nil {
		return nil, err
	}
	// Fast rejection; the repository re-checks under a row lock.
	if sender.Balance < amount {
		return nil, apierr.InsufficientFunds()
	}

	row := &model.Transaction{
		From:         &sender.Address,
		To:           recipient,
		Value:        amount,
		Time:         s.now(),
		Metadata:     normalize(metadata),
		SentMetaname: sentMetaname,
		SentName:     sentName,
		UserAgent:    meta.UserAgent,
		Origin:       meta.Origin,
	}
	if err := s.repo.PerformTransfer(ctx, sender.Address, recipient, amount, row); err != nil {
		if errors.Is(err, postgres.ErrInsufficientFunds) {
			return nil, apierr.InsufficientFunds()
		}
		return nil, err
	}

	s.publisher.Publish(bus.Event{Type: bus.EventTransaction, Transaction: row})
	return row, nil
}

// Get returns the ledger entry with the given id.
func (s *Service) Get(ctx context.Context, id uint64) (*model.Transaction, error) {
	row, err := s.repo.Transaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apierr.TransactionNotFound()
	}
	return row, nil
}

// List returns ledger entries, ascending from the first entry or descending
// from the latest.
func (s *Service) List(ctx context.Context, limit, offset int, ascending bool) ([]model.Transaction, int, error) {
	return s.repo.Transactions(ctx, limit, offset, ascending)
}

// ByAddress returns the entries an address participated in, newest first.
func (s *Service) ByAddress(ctx context.Context, address string, limit, offset int) ([]model.Transaction, int, error) {
	if !crypto.IsValidAddress(s.constants.AddressPrefix, address) {
		return nil, 0, apierr.InvalidParameter("address")
	}
	return s.repo.AddressTransactions(ctx, address, limit, offset)
}

// lookupColumns whitelists the sortable columns of the lookup surface.
var lookupColumns = map[string]string{
	"id":    "id",
	"from":  "from",
	"to":    "to",
	"value": "value",
	"time":  "time",
}

// Lookup lists the entries involving any of the given addresses with a
// caller-chosen sort. Addresses are validated; the sort column must be on
// the whitelist. Mined entries are excluded unless includeMined is set.
func (s *Service) Lookup(ctx context.Context, addresses []string, includeMined bool, orderBy string, descending bool, limit, offset int) ([]model.Transaction, int, error) {
	for _, address := range addresses {
		if !crypto.IsValidAddress(s.constants.AddressPrefix, address) {
			return nil, 0, apierr.InvalidParameter("addresses")
		}
	}
	if orderBy == "" {
		orderBy = "id"
	}
	column, ok := lookupColumns[orderBy]
	if !ok {
		return nil, 0, apierr.InvalidParameter("orderBy")
	}
	order := postgres.LookupOrder{Column: column, Descending: descending}
	return s.repo.LookupTransactions(ctx, addresses, includeMined, order, limit, offset)
}

// normalize turns an empty metadata string into an absent one.
func normalize(metadata *string) *string {
	if metadata == nil || *metadata == "" {
		return nil
	}
	return metadata
}
