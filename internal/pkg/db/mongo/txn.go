package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// TransactionRunner wraps the commit path's all-reads-then-all-writes block
// in a MongoDB transaction so a mid-flight capacity conflict rolls every
// write back. Tests substitute a pass-through runner.
type TransactionRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

type SessionTransactionRunner struct {
	Client *mongo.Client
}

func NewSessionTransactionRunner(client *MongoClient) *SessionTransactionRunner {
	return &SessionTransactionRunner{Client: client.Client}
}

func (r *SessionTransactionRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
