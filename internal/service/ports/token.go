package ports

import "github.com/stpnv0/LazyReserve/internal/domain"

type TokenIssuer interface {
	Issue(userID string) (domain.TokenPair, error)
	ParseRefresh(token string) (string, error)
}
