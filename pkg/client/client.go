// Package client provides a typed HTTP client for the bookkeeping backend's
// REST surface. It holds no local cache: callers re-fetch lists after every
// mutation, matching the behavior of the reference front end.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when the target of a delete does not exist.
var ErrNotFound = errors.New("record not found")

// Client is a stateless HTTP client for the bookkeeping backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for a backend rooted at baseURL, which should include
// the API prefix (e.g. "http://localhost:8080/api/v1").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Income mirrors one row of the income table.
type Income struct {
	IncomeID    int64           `json:"income_id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Expense mirrors one row of the expense table.
type Expense struct {
	ExpenseID   int64           `json:"expense_id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Payable mirrors one row of the accounts_payable table.
type Payable struct {
	PayableID  int64           `json:"payable_id"`
	VendorName string          `json:"vendor_name"`
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
}

// Receivable mirrors one row of the accounts_receivable table.
type Receivable struct {
	ReceivableID int64           `json:"receivable_id"`
	CustomerName string          `json:"customer_name"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
}

// CreateEntryRequest carries the fields for a new income or expense entry.
type CreateEntryRequest struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreatePayableRequest carries the fields for a new payable.
type CreatePayableRequest struct {
	VendorName string          `json:"vendor_name"`
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status,omitempty"`
}

// CreateReceivableRequest carries the fields for a new receivable.
type CreateReceivableRequest struct {
	CustomerName string          `json:"customer_name"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status,omitempty"`
}

// IncomeStatement is the all-time totals report.
type IncomeStatement struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	ProfitLoss   decimal.Decimal `json:"profit_loss"`
}

// BalanceSheet is the outstanding unpaid balances report.
type BalanceSheet struct {
	PayableBalance    decimal.Decimal `json:"payable_balance"`
	ReceivableBalance decimal.Decimal `json:"receivable_balance"`
}

// CashFlowEntry is one dated amount in the cash flow report.
type CashFlowEntry struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// CashFlow is the date-ranged entries report.
type CashFlow struct {
	Income   []CashFlowEntry `json:"income"`
	Expenses []CashFlowEntry `json:"expenses"`
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// errorBody matches the two error payload shapes the backend emits.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do issues one request and decodes the response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		msg := eb.Error
		if msg == "" {
			msg = eb.Message
		}
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s: %w", msg, ErrNotFound)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// ListIncome fetches all income entries.
func (c *Client) ListIncome(ctx context.Context) ([]Income, error) {
	var entries []Income
	if err := c.do(ctx, http.MethodGet, "/income", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateIncome records a new income entry and returns it with its id.
func (c *Client) CreateIncome(ctx context.Context, req CreateEntryRequest) (*Income, error) {
	var entry Income
	if err := c.do(ctx, http.MethodPost, "/income", req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteIncome deletes an income entry by id.
func (c *Client) DeleteIncome(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/income/%d", id), nil, nil)
}

// ListExpense fetches all expense entries.
func (c *Client) ListExpense(ctx context.Context) ([]Expense, error) {
	var entries []Expense
	if err := c.do(ctx, http.MethodGet, "/expense", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateExpense records a new expense entry and returns it with its id.
func (c *Client) CreateExpense(ctx context.Context, req CreateEntryRequest) (*Expense, error) {
	var entry Expense
	if err := c.do(ctx, http.MethodPost, "/expense", req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteExpense deletes an expense entry by id.
func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/expense/%d", id), nil, nil)
}

// ListPayables fetches all accounts payable rows.
func (c *Client) ListPayables(ctx context.Context) ([]Payable, error) {
	var payables []Payable
	if err := c.do(ctx, http.MethodGet, "/payable", nil, &payables); err != nil {
		return nil, err
	}
	return payables, nil
}

// CreatePayable records a new payable and returns it with its id.
func (c *Client) CreatePayable(ctx context.Context, req CreatePayableRequest) (*Payable, error) {
	var payable Payable
	if err := c.do(ctx, http.MethodPost, "/payable", req, &payable); err != nil {
		return nil, err
	}
	return &payable, nil
}

// UpdatePayableStatus sets the status of a payable. Updating a missing id is
// a benign no-op on the server and succeeds here as well.
func (c *Client) UpdatePayableStatus(ctx context.Context, id int64, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/payable/%d", id), body, nil)
}

// DeletePayable deletes a payable by id.
func (c *Client) DeletePayable(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/payable/%d", id), nil, nil)
}

// ListReceivables fetches all accounts receivable rows.
func (c *Client) ListReceivables(ctx context.Context) ([]Receivable, error) {
	var receivables []Receivable
	if err := c.do(ctx, http.MethodGet, "/receivable", nil, &receivables); err != nil {
		return nil, err
	}
	return receivables, nil
}

// CreateReceivable records a new receivable and returns it with its id.
func (c *Client) CreateReceivable(ctx context.Context, req CreateReceivableRequest) (*Receivable, error) {
	var receivable Receivable
	if err := c.do(ctx, http.MethodPost, "/receivable", req, &receivable); err != nil {
		return nil, err
	}
	return &receivable, nil
}

// UpdateReceivableStatus sets the status of a receivable.
func (c *Client) UpdateReceivableStatus(ctx context.Context, id int64, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/receivable/%d", id), body, nil)
}

// DeleteReceivable deletes a receivable by id.
func (c *Client) DeleteReceivable(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/receivable/%d", id), nil, nil)
}

// IncomeStatement fetches the all-time income statement.
func (c *Client) IncomeStatement(ctx context.Context) (*IncomeStatement, error) {
	var report IncomeStatement
	if err := c.do(ctx, http.MethodGet, "/reports/income-statement", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// BalanceSheet fetches the unpaid balances report.
func (c *Client) BalanceSheet(ctx context.Context) (*BalanceSheet, error) {
	var report BalanceSheet
	if err := c.do(ctx, http.MethodGet, "/reports/balance-sheet", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// CashFlow fetches the dated entries between startDate and endDate inclusive.
// Dates are YYYY-MM-DD strings.
func (c *Client) CashFlow(ctx context.Context, startDate, endDate string) (*CashFlow, error) {
	params := url.Values{}
	params.Set("startDate", startDate)
	params.Set("endDate", endDate)

	var report CashFlow
	if err := c.do(ctx, http.MethodGet, "/reports/cash-flow?"+params.Encode(), nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
