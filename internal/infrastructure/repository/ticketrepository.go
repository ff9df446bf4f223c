package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	db "github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/query"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.first(db.GetTxFromContext(ctx, r.db), id)
}

func (r *TicketRepository) GetByIDForUpdate(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate(ctx)), id)
}

func (r *TicketRepository) first(tx *gorm.DB, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// Update writes all mutable columns, nulls included.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "status", "priority", "assignee_id",
			"updated_at", "resolved_at", "closed_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

// Delete removes the ticket and its comments.
func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket comments: %w", err)
		}
		result := tx.Delete(&models.TicketModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("ticket not found")
		}
		return nil
	})
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.TicketModel{}).
		Scopes(visibleTo(filter.Visibility), query.Search(filter.Search, "title", "description"))

	if filter.Status != nil {
		q = q.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", filter.Priority.String())
	}
	if filter.CreatorID != nil {
		q = q.Where("creator_id = ?", *filter.CreatorID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var list []models.TicketModel
	if err := q.Order("created_at DESC").Order("id DESC").
		Scopes(query.Paginate(filter.Page, filter.PageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(list))
	for i := range list {
		t, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}

type groupCount struct {
	Name  string
	Total int64
}

func (r *TicketRepository) Stats(ctx context.Context, visibility ticket.Visibility) (*ticket.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var byStatus, byPriority []groupCount
	if err := tx.Model(&models.TicketModel{}).Scopes(visibleTo(visibility)).
		Select("status AS name, COUNT(*) AS total").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}
	if err := tx.Model(&models.TicketModel{}).Scopes(visibleTo(visibility)).
		Select("priority AS name, COUNT(*) AS total").
		Group("priority").
		Scan(&byPriority).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by priority: %w", err)
	}

	stats := &ticket.Stats{
		ByStatus:   make(map[vo.TicketStatus]int64, len(vo.AllStatuses())),
		ByPriority: make(map[vo.Priority]int64, len(vo.AllPriorities())),
	}
	for _, s := range vo.AllStatuses() {
		stats.ByStatus[s] = 0
	}
	for _, p := range vo.AllPriorities() {
		stats.ByPriority[p] = 0
	}
	for _, row := range byStatus {
		stats.ByStatus[vo.TicketStatus(row.Name)] = row.Total
		stats.Total += row.Total
	}
	for _, row := range byPriority {
		stats.ByPriority[vo.Priority(row.Name)] = row.Total
	}
	return stats, nil
}

// visibleTo translates ticket.Visibility into a WHERE clause.
func visibleTo(v ticket.Visibility) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		switch v.Kind {
		case ticket.VisibleAll:
			return tx
		case ticket.VisibleToStaff:
			return tx.Where("(assignee_id = ? OR assignee_id IS NULL OR creator_id = ?)", v.ActorID, v.ActorID)
		default:
			return tx.Where("creator_id = ?", v.ActorID)
		}
	}
}

// CommentRepository stores ticket comments. Comments are append-only.
type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return c.SetID(model.ID)
}

// ListByTicketID returns comments oldest first.
func (r *CommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var list []models.CommentModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, len(list))
	for i := range list {
		comments[i] = r.mapper.CommentToDomain(&list[i])
	}
	return comments, nil
}
