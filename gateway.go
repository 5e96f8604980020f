package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionFilter narrows a transaction fetch beyond owner and date range.
type TransactionFilter struct {
	Status     string
	CategoryID string
}

// LedgerGateway is the query interface the reporting engine consumes. Rows
// returned are already scoped to the owner; the engine never filters by an
// owner field itself.
type LedgerGateway interface {
	FetchTransactions(ctx context.Context, ownerID string, start, end time.Time, filter *TransactionFilter) ([]Transaction, error)
	FetchCategories(ctx context.Context, ownerID string) ([]Category, error)
}

// LedgerStore adds the record-keeping write paths on top of the gateway.
type LedgerStore interface {
	LedgerGateway
	InsertTransaction(ctx context.Context, ownerID string, t Transaction) (Transaction, error)
	UpdateTransactionStatus(ctx context.Context, ownerID, id, status string) (Transaction, error)
	DeleteTransaction(ctx context.Context, ownerID, id string) error
	GetCategory(ctx context.Context, ownerID, id string) (Category, error)
	InsertCategory(ctx context.Context, ownerID string, cat Category) (Category, error)
}

// errNotFound is returned by store lookups that match no row.
var errNotFound = errors.New("resource not found")

// pgLedgerStore implements LedgerStore over a pgx connection pool.
type pgLedgerStore struct {
	pool *pgxpool.Pool
}

func newPgLedgerStore(pool *pgxpool.Pool) *pgLedgerStore {
	return &pgLedgerStore{pool: pool}
}

const transactionColumns = `id, description, amount, transaction_date, status, due_date, tax_amount, category_id, created_at, updated_at`

func (s *pgLedgerStore) FetchTransactions(ctx context.Context, ownerID string, start, end time.Time, filter *TransactionFilter) ([]Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE owner_id = $1 AND transaction_date >= $2 AND transaction_date <= $3`
	args := []interface{}{ownerID, truncateToDay(start), truncateToDay(end)}

	if filter != nil && filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter != nil && filter.CategoryID != "" {
		categoryUUID, err := uuid.Parse(filter.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category filter: %w", err)
		}
		args = append(args, pgtype.UUID{Bytes: categoryUUID, Valid: true})
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	query += " ORDER BY transaction_date DESC, created_at DESC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}

	return transactions, nil
}

func (s *pgLedgerStore) FetchCategories(ctx context.Context, ownerID string) ([]Category, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, type, is_parent, parent_id, created_at, updated_at
		FROM categories
		WHERE owner_id = $1
		ORDER BY name`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}

	return categories, nil
}

func (s *pgLedgerStore) InsertTransaction(ctx context.Context, ownerID string, t Transaction) (Transaction, error) {
	amount, err := numericFromFloat(t.Amount)
	if err != nil {
		return Transaction{}, fmt.Errorf("converting amount: %w", err)
	}

	var dueDate pgtype.Date
	if t.DueDate != nil {
		dueDate = pgtype.Date{Time: truncateToDay(*t.DueDate), Valid: true}
	}
	var taxAmount pgtype.Numeric
	if t.TaxAmount != nil {
		taxAmount, err = numericFromFloat(*t.TaxAmount)
		if err != nil {
			return Transaction{}, fmt.Errorf("converting tax amount: %w", err)
		}
	}
	var categoryID pgtype.UUID
	if t.CategoryID != nil {
		parsed, err := uuid.Parse(*t.CategoryID)
		if err != nil {
			return Transaction{}, fmt.Errorf("invalid category id: %w", err)
		}
		categoryID = pgtype.UUID{Bytes: parsed, Valid: true}
	}

	row := s.pool.QueryRow(ctx, `
		INSERT INTO transactions (owner_id, description, amount, transaction_date, status, due_date, tax_amount, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+transactionColumns,
		ownerID, t.Description, amount, truncateToDay(t.Date), t.Status, dueDate, taxAmount, categoryID)

	return scanTransaction(row)
}

func (s *pgLedgerStore) UpdateTransactionStatus(ctx context.Context, ownerID, id, status string) (Transaction, error) {
	transactionUUID, err := uuid.Parse(id)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction id: %w", err)
	}

	row := s.pool.QueryRow(ctx, `
		UPDATE transactions
		SET status = $1, updated_at = now()
		WHERE owner_id = $2 AND id = $3
		RETURNING `+transactionColumns,
		status, ownerID, pgtype.UUID{Bytes: transactionUUID, Valid: true})

	t, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Transaction{}, errNotFound
	}
	return t, err
}

func (s *pgLedgerStore) DeleteTransaction(ctx context.Context, ownerID, id string) error {
	transactionUUID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid transaction id: %w", err)
	}

	tag, err := s.pool.Exec(ctx, `DELETE FROM transactions WHERE owner_id = $1 AND id = $2`,
		ownerID, pgtype.UUID{Bytes: transactionUUID, Valid: true})
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (s *pgLedgerStore) GetCategory(ctx context.Context, ownerID, id string) (Category, error) {
	categoryUUID, err := uuid.Parse(id)
	if err != nil {
		return Category{}, fmt.Errorf("invalid category id: %w", err)
	}

	row := s.pool.QueryRow(ctx, `
		SELECT id, name, type, is_parent, parent_id, created_at, updated_at
		FROM categories
		WHERE owner_id = $1 AND id = $2`,
		ownerID, pgtype.UUID{Bytes: categoryUUID, Valid: true})

	cat, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, errNotFound
	}
	return cat, err
}

func (s *pgLedgerStore) InsertCategory(ctx context.Context, ownerID string, cat Category) (Category, error) {
	var parentID pgtype.UUID
	if cat.ParentID != nil {
		parsed, err := uuid.Parse(*cat.ParentID)
		if err != nil {
			return Category{}, fmt.Errorf("invalid parent id: %w", err)
		}
		parentID = pgtype.UUID{Bytes: parsed, Valid: true}
	}

	row := s.pool.QueryRow(ctx, `
		INSERT INTO categories (owner_id, name, type, is_parent, parent_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, type, is_parent, parent_id, created_at, updated_at`,
		ownerID, cat.Name, cat.Type, cat.IsParent, parentID)

	return scanCategory(row)
}

// scanTransaction converts one transaction row into the API model, handling
// nullable pgtype fields.
func scanTransaction(row pgx.Row) (Transaction, error) {
	var t Transaction
	var id, categoryID pgtype.UUID
	var amount, taxAmount pgtype.Numeric
	var transactionDate, dueDate pgtype.Date
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(&id, &t.Description, &amount, &transactionDate, &t.Status,
		&dueDate, &taxAmount, &categoryID, &createdAt, &updatedAt)
	if err != nil {
		return Transaction{}, err
	}

	t.ID = uuid.UUID(id.Bytes).String()
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	if amount.Valid {
		amountValue, err := amount.Float64Value()
		if err != nil {
			return Transaction{}, err
		}
		t.Amount = amountValue.Float64
	}
	if transactionDate.Valid {
		t.Date = transactionDate.Time
	}
	if dueDate.Valid {
		due := dueDate.Time
		t.DueDate = &due
	}
	if taxAmount.Valid {
		taxValue, err := taxAmount.Float64Value()
		if err != nil {
			return Transaction{}, err
		}
		t.TaxAmount = &taxValue.Float64
	}
	if categoryID.Valid {
		categoryStr := uuid.UUID(categoryID.Bytes).String()
		t.CategoryID = &categoryStr
	}

	return t, nil
}

// scanCategory converts one category row into the API model.
func scanCategory(row pgx.Row) (Category, error) {
	var cat Category
	var id, parentID pgtype.UUID
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(&id, &cat.Name, &cat.Type, &cat.IsParent, &parentID, &createdAt, &updatedAt)
	if err != nil {
		return Category{}, err
	}

	cat.ID = uuid.UUID(id.Bytes).String()
	cat.CreatedAt = createdAt.Time
	cat.UpdatedAt = updatedAt.Time
	if parentID.Valid {
		parentStr := uuid.UUID(parentID.Bytes).String()
		cat.ParentID = &parentStr
	}

	return cat, nil
}

// numericFromFloat converts a float64 amount to pgtype.Numeric with two
// decimal places.
func numericFromFloat(amount float64) (pgtype.Numeric, error) {
	var numeric pgtype.Numeric
	amountStr := big.NewFloat(amount).Text('f', 2)
	if err := numeric.Scan(amountStr); err != nil {
		return numeric, err
	}
	return numeric, nil
}
