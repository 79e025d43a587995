package names

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tstnetwork/tstnode/internal/apierr"
	"github.com/tstnetwork/tstnode/internal/bus"
	"github.com/tstnetwork/tstnode/internal/config"
	"github.com/tstnetwork/tstnode/internal/crypto"
	"github.com/tstnetwork/tstnode/internal/model"
	"github.com/tstnetwork/tstnode/internal/repository/postgres"
)

// Service is the name registry.
type Service struct {
	repo      Repository
	auth      Authenticator
	publisher bus.Publisher
	constants config.Constants
	logger    *zap.Logger
	now       func() time.Time
}

// New builds the registry.
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

// Cost returns the purchase price of a name.
func (s *Service) Cost() uint64 {
	return s.constants.NameCost
}

// Bonus returns the current name bonus: the count of names whose unpaid
// counter still contributes to block rewards.
func (s *Service) Bonus(ctx context.Context) (int, error) {
	return s.repo.CountUnpaidNames(ctx)
}

// Register purchases a name for the key holder. The buyer pays the full
// name cost and the name starts with its unpaid counter at that cost.
func (s *Service) Register(ctx context.Context, meta model.RequestMeta, privatekey, name string) (*model.Name, error) {
	name = s.canonical(name)
	if name == "" {
		return nil, apierr.MissingParameter("name")
	}
	if !crypto.IsValidName(name) {
		return nil, apierr.InvalidParameter("name")
	}

	existing, err := s.repo.Name(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apierr.NameTaken()
	}

	buyer, err := s.auth.Authenticate(ctx, meta, privatekey, model.AuthLogAuth)
	if err != nil {
		return nil, err
	}
	cost := s.constants.NameCost
	if buyer.Balance < cost {
		return nil, apierr.InsufficientFunds()
	}

	now := s.now()
	row := &model.Name{
		Name:          name,
		Owner:         buyer.Address,
		OriginalOwner: buyer.Address,
		Registered:    now,
		Updated:       now,
		Unpaid:        uint32(cost),
	}
	entry := &model.Transaction{
		From:      &buyer.Address,
		To:        model.PseudoName,
		Value:     cost,
		Time:      now,
		Name:      &name,
		UserAgent: meta.UserAgent,
		Origin:    meta.Origin,
	}
	if err := s.repo.RegisterName(ctx, row, cost, entry); err != nil {
		if errors.Is(err, postgres.ErrInsufficientFunds) {
			return nil, apierr.InsufficientFunds()
		}
		if postgres.IsUniqueViolation(err) {
			// Lost a purchase race for the same name.
			return nil, apierr.NameTaken()
		}
		return nil, err
	}

	s.publisher.Publish(bus.Event{Type: bus.EventTransaction, Transaction: entry})
	s.publisher.Publish(bus.Event{Type: bus.EventName, Name: row})
	return row, nil
}

// Transfer reassigns a name owned by the key holder.
func (s *Service) Transfer(ctx context.Context, meta model.RequestMeta, privatekey, name, to string) (*model.Name, error) {
	name = s.canonical(name)
	if name == "" {
		return nil, apierr.MissingParameter("name")
	}
	if to == "" {
		return nil, apierr.MissingParameter("address")
	}
	if !crypto.IsValidAddress(s.constants.AddressPrefix, to) {
		return nil, apierr.InvalidParameter("address")
	}

	sender, row, err := s.authenticateOwner(ctx, meta, privatekey, name)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry := &model.Transaction{
		From:      &sender.Address,
		To:        to,
		Value:     0,
		Time:      now,
		Name:      &name,
		UserAgent: meta.UserAgent,
		Origin:    meta.Origin,
	}
	if err := s.repo.TransferName(ctx, name, sender.Address, to, now, entry); err != nil {
		if errors.Is(err, postgres.ErrNotNameOwner) {
			return nil, apierr.NotNameOwner()
		}
		return nil, err
	}

	row.Owner = to
	row.Updated = now
	s.publisher.Publish(bus.Event{Type: bus.EventTransaction, Transaction: entry})
	s.publisher.Publish(bus.Event{Type: bus.EventName, Name: row})
	return row, nil
}

// UpdateARecord replaces the data record of a name owned by the key holder.
// An empty record clears it.
func (s *Service) UpdateARecord(ctx context.Context, meta model.RequestMeta, privatekey, name, record string) (*model.Name, error) {
	name = s.canonical(name)
	if name == "" {
		return nil, apierr.MissingParameter("name")
	}

	var stored *string
	if record != "" {
		if len(record) > crypto.MaxARecordLength {
			return nil, apierr.LargeParameter("a")
		}
		if !crypto.IsValidARecord(record) {
			return nil, apierr.InvalidParameter("a")
		}
		stored = &record
	}

	sender, row, err := s.authenticateOwner(ctx, meta, privatekey, name)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry := &model.Transaction{
		From:      &sender.Address,
		To:        model.PseudoARecord,
		Value:     0,
		Time:      now,
		Name:      &name,
		Metadata:  stored,
		UserAgent: meta.UserAgent,
		Origin:    meta.Origin,
	}
	if err := s.repo.UpdateNameRecord(ctx, name, sender.Address, stored, now, entry); err != nil {
		if errors.Is(err, postgres.ErrNotNameOwner) {
			return nil, apierr.NotNameOwner()
		}
		return nil, err
	}

	row.ARecord = stored
	row.Updated = now
	s.publisher.Publish(bus.Event{Type: bus.EventTransaction, Transaction: entry})
	s.publisher.Publish(bus.Event{Type: bus.EventName, Name: row})
	return row, nil
}

// Get returns a registered name. Lookups accept the ".tst" suffix and
// punycoded forms.
func (s *Service) Get(ctx context.Context, name string) (*model.Name, error) {
	name = s.canonical(name)
	if name == "" {
		return nil, apierr.MissingParameter("name")
	}
	if !crypto.IsValidNameForFetch(name) {
		return nil, apierr.InvalidParameter("name")
	}

	row, err := s.repo.Name(ctx, name)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apierr.NameNotFound()
	}
	return row, nil
}

// Check reports whether a name is still available for purchase.
func (s *Service) Check(ctx context.Context, name string) (bool, error) {
	name = s.canonical(name)
	if !crypto.IsValidName(name) {
		return false, apierr.InvalidParameter("name")
	}
	row, err := s.repo.Name(ctx, name)
	if err != nil {
		return false, err
	}
	return row == nil, nil
}

// List returns registered names alphabetically.
func (s *Service) List(ctx context.Context, limit, offset int) ([]model.Name, int, error) {
	return s.repo.Names(ctx, limit, offset)
}

// Newest returns names by registration time, newest first.
func (s *Service) Newest(ctx context.Context, limit, offset int) ([]model.Name, int, error) {
	return s.repo.NewestNames(ctx, limit, offset)
}

// ByOwner returns the names owned by an address.
func (s *Service) ByOwner(ctx context.Context, owner string, limit, offset int) ([]model.Name, int, error) {
	if !crypto.IsValidAddress(s.constants.AddressPrefix, owner) {
		return nil, 0, apierr.InvalidParameter("address")
	}
	return s.repo.NamesByOwner(ctx, owner, limit, offset)
}

// authenticateOwner authenticates the key and requires the resulting
// address to own the name.
func (s *Service) authenticateOwner(ctx context.Context, meta model.RequestMeta, privatekey, name string) (*model.Address, *model.Name, error) {
	row, err := s.repo.Name(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	if row == nil {
		return nil, nil, apierr.NameNotFound()
	}

	sender, err := s.auth.Authenticate(ctx, meta, privatekey, model.AuthLogAuth)
	if err != nil {
		return nil, nil, err
	}
	if sender.Address != row.Owner {
		return nil, nil, apierr.NotNameOwner()
	}
	return sender, row, nil
}

// canonical lowercases a name and strips the network suffix.
func (s *Service) canonical(name string) string {
	return crypto.StripNameSuffix(strings.ToLower(strings.TrimSpace(name)), s.constants.NameSuffix)
}

// lookupColumns whitelists the sortable columns of the lookup surface.
var lookupColumns = map[string]string{
	"name":           "name",
	"owner":          "owner",
	"original_owner": "original_owner",
	"registered":     "registered",
	"updated":        "updated",
	"unpaid":         "unpaid",
}

// Lookup lists the names owned by any of the given addresses, or all names
// when none are given, with a caller-chosen sort. Addresses are validated;
// the sort column must be on the whitelist.
func (s *Service) Lookup(ctx context.Context, owners []string, orderBy string, descending bool, limit, offset int) ([]model.Name, int, error) {
	for _, owner := range owners {
		if !crypto.IsValidAddress(s.constants.AddressPrefix, owner) {
			return nil, 0, apierr.InvalidParameter("addresses")
		}
	}
	if orderBy == "" {
		orderBy = "name"
	}
	column, ok := lookupColumns[orderBy]
	if !ok {
		return nil, 0, apierr.InvalidParameter("orderBy")
	}
	order := postgres.LookupOrder{Column: column, Descending: descending}
	return s.repo.LookupNames(ctx, owners, order, limit, offset)
}
