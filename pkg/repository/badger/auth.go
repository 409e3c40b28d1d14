package badger

import (
	"context"
	"encoding/json"
	"errors"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/model/auth"
)

func tokenKey(id auth.TokenID) []byte {
	return []byte(tokenKeyPrefix + id.String())
}

func (b *Badger) PutToken(ctx context.Context, token *auth.Token) error {
	if err := token.Validate(); err != nil {
		return goerr.Wrap(err, "invalid token")
	}

	return b.db.Update(func(txn *badger.Txn) error {
		raw, err := json.Marshal(token)
		if err != nil {
			return goerr.Wrap(err, "failed to encode token")
		}
		if err := txn.Set(tokenKey(token.ID), raw); err != nil {
			return goerr.Wrap(err, "failed to write token")
		}
		return nil
	})
}

func (b *Badger) GetToken(ctx context.Context, tokenID auth.TokenID) (*auth.Token, error) {
	var token auth.Token
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(tokenKey(tokenID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return goerr.Wrap(ErrNotFound, "token not found", goerr.V("tokenID", tokenID))
		}
		if err != nil {
			return goerr.Wrap(err, "failed to read token")
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &token)
		})
	})
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (b *Badger) DeleteToken(ctx context.Context, tokenID auth.TokenID) error {
	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(tokenKey(tokenID)); err != nil {
			return goerr.Wrap(err, "failed to delete token")
		}
		return nil
	})
}
