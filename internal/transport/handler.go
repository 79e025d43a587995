package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/tstnetwork/tstnode/internal/service/motd"
)

// Handler adapts the engines onto the JSON HTTP routes.
type Handler struct {
	addresses    AddressService
	blocks       BlockService
	transactions TransactionService
	names        NameService
	staking      StakingService
	work         WorkService
	search       SearchService
	motd         MOTDService
	logger       *zap.Logger
}

// New builds the handler set.
func New(
	addresses AddressService,
	blocks BlockService,
	transactions TransactionService,
	names NameService,
	staking StakingService,
	work WorkService,
	search SearchService,
	motd MOTDService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		addresses:    addresses,
		blocks:       blocks,
		transactions: transactions,
		names:        names,
		staking:      staking,
		work:         work,
		search:       search,
		motd:         motd,
		logger:       logger,
	}
}

// Router mounts every route, the WebSocket handshake included.
func (h *Handler) Router(gateway GatewayHandlers) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(h.notFound)

	r.HandleFunc("/", h.motdHandler).Methods(http.MethodGet)
	r.HandleFunc("/api", h.motdHandler).Methods(http.MethodGet)
	r.HandleFunc("/motd", h.motdHandler).Methods(http.MethodGet)

	r.HandleFunc("/addresses", h.listAddresses).Methods(http.MethodGet)
	r.HandleFunc("/addresses/rich", h.richAddresses).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}", h.getAddress).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}/transactions", h.addressTransactions).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}/names", h.addressNames).Methods(http.MethodGet)

	r.HandleFunc("/blocks", h.listBlocks).Methods(http.MethodGet)
	r.HandleFunc("/blocks/last", h.lastBlock).Methods(http.MethodGet)
	r.HandleFunc("/blocks/lowest", h.lowestBlock).Methods(http.MethodGet)
	r.HandleFunc("/blocks/basevalue", h.baseValue).Methods(http.MethodGet)
	r.HandleFunc("/blocks/{height:[0-9]+}", h.getBlock).Methods(http.MethodGet)
	r.HandleFunc("/submit_block", h.submitBlock).Methods(http.MethodPost)

	r.HandleFunc("/transactions", h.listTransactions).Methods(http.MethodGet)
	r.HandleFunc("/transactions", h.pushTransaction).Methods(http.MethodPost)
	r.HandleFunc("/transactions/latest", h.latestTransactions).Methods(http.MethodGet)
	r.HandleFunc("/transactions/{id:[0-9]+}", h.getTransaction).Methods(http.MethodGet)

	r.HandleFunc("/names", h.listNames).Methods(http.MethodGet)
	r.HandleFunc("/names/cost", h.nameCost).Methods(http.MethodGet)
	r.HandleFunc("/names/bonus", h.nameBonus).Methods(http.MethodGet)
	r.HandleFunc("/names/new", h.newestNames).Methods(http.MethodGet)
	r.HandleFunc("/names/check/{name}", h.checkName).Methods(http.MethodGet)
	r.HandleFunc("/names/{name}", h.getName).Methods(http.MethodGet)
	r.HandleFunc("/names/{name}", h.registerName).Methods(http.MethodPost)
	r.HandleFunc("/names/{name}/transfer", h.transferName).Methods(http.MethodPost)
	r.HandleFunc("/names/{name}/update", h.updateName).Methods(http.MethodPost, http.MethodPut)

	r.HandleFunc("/staking", h.listStakes).Methods(http.MethodGet)
	r.HandleFunc("/staking", h.depositStake).Methods(http.MethodPost)
	r.HandleFunc("/staking/withdraw", h.withdrawStake).Methods(http.MethodPost)
	r.HandleFunc("/staking/validator", h.currentValidator).Methods(http.MethodGet)
	r.HandleFunc("/staking/penalties", h.stakePenalties).Methods(http.MethodGet)
	r.HandleFunc("/staking/{address}", h.getStake).Methods(http.MethodGet)

	r.HandleFunc("/work", h.currentWork).Methods(http.MethodGet)
	r.HandleFunc("/work/day", h.workDay).Methods(http.MethodGet)
	r.HandleFunc("/work/detailed", h.workDetailed).Methods(http.MethodGet)

	r.HandleFunc("/lookup/addresses/{addresses}", h.lookupAddresses).Methods(http.MethodGet)
	r.HandleFunc("/lookup/blocks", h.lookupBlocks).Methods(http.MethodGet)
	r.HandleFunc("/lookup/blocks/{addresses}", h.lookupBlocks).Methods(http.MethodGet)
	r.HandleFunc("/lookup/transactions", h.lookupTransactions).Methods(http.MethodGet)
	r.HandleFunc("/lookup/transactions/{addresses}", h.lookupTransactions).Methods(http.MethodGet)
	r.HandleFunc("/lookup/names", h.lookupNames).Methods(http.MethodGet)
	r.HandleFunc("/lookup/names/{addresses}", h.lookupNames).Methods(http.MethodGet)

	r.HandleFunc("/search", h.searchQuery).Methods(http.MethodGet)
	r.HandleFunc("/search/extended", h.searchExtended).Methods(http.MethodGet)
	r.HandleFunc("/search/extended/results/transactions/{type}", h.searchTransactions).Methods(http.MethodGet)

	r.HandleFunc("/ws/start", gateway.StartHandler).Methods(http.MethodPost)
	r.HandleFunc("/ws/gateway/{token}", gateway.ConnectHandler).Methods(http.MethodGet)

	return r
}

func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]interface{}{
		"ok":    false,
		"error": "route_not_found",
	})
}

func (h *Handler) motdHandler(w http.ResponseWriter, r *http.Request) {
	info, err := h.motd.Get(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		OK bool `json:"ok"`
		*motd.Info
	}{true, info})
}
