// Package models holds the gorm persistence models. They are the
// anti-corruption layer between the domain types and the database.
package models

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&EmailVerificationModel{},
		&SessionModel{},
		&TicketModel{},
		&CommentModel{},
	}
}
