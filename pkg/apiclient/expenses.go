package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

// CreateExpense records an expense in a group. Caller must be a member.
func (c *Client) CreateExpense(ctx context.Context, groupID int, in ExpenseCreate) (*Expense, error) {
	var expense Expense
	path := fmt.Sprintf("/groups/%d/expenses", groupID)
	if err := c.do(ctx, http.MethodPost, path, nil, in, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// ListExpenses returns a page of a group's expenses.
func (c *Client) ListExpenses(ctx context.Context, groupID, offset, limit int) (*Paginated[Expense], error) {
	var page Paginated[Expense]
	path := fmt.Sprintf("/groups/%d/expenses", groupID)
	if err := c.do(ctx, http.MethodGet, path, pageQuery(offset, limit), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetExpense returns one expense. Caller must be a member of its group.
func (c *Client) GetExpense(ctx context.Context, expenseID int) (*Expense, error) {
	var expense Expense
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/expenses/%d", expenseID), nil, nil, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// UpdateExpense updates an expense. Creator only.
func (c *Client) UpdateExpense(ctx context.Context, expenseID int, in ExpenseUpdate) (*Expense, error) {
	var expense Expense
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/expenses/%d", expenseID), nil, in, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense deletes an expense. Creator only.
func (c *Client) DeleteExpense(ctx context.Context, expenseID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/expenses/%d", expenseID), nil, nil, nil)
}
