// Package common holds the small contracts shared by all use cases.
package common

import "context"

// TransactionManager runs fn inside one database transaction. Repositories
// called with the ctx handed to fn join that transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
