package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/chching/internal/domain"
)

var entryDate = time.Date(2023, time.April, 2, 0, 0, 0, 0, time.UTC)

func TestCollectorBuildsResponse(t *testing.T) {
	c := NewCollector()

	c.ShowMessage("Income added, here is the updated list:")
	c.ShowIncomes(domain.NewIncomeList(domain.NewIncome("salary", entryDate, decimal.NewFromInt(1200))).Enumerate())

	resp := c.Response
	if resp.Message != "Income added, here is the updated list:" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if len(resp.Incomes) != 1 {
		t.Fatalf("expected one income, got %d", len(resp.Incomes))
	}

	want := IncomeResponse{Index: 1, Description: "salary", Date: "02-04-2023", Value: "1200.00"}
	if resp.Incomes[0] != want {
		t.Fatalf("unexpected income: %+v", resp.Incomes[0])
	}
	if resp.Expenses != nil || resp.Balance != nil {
		t.Fatalf("expected unrendered sections to stay nil")
	}
}

func TestCollectorEncoding(t *testing.T) {
	c := NewCollector()
	c.ShowExpenses(domain.NewExpenseList().Enumerate())
	c.ShowBalance(decimal.NewFromInt(10), decimal.RequireFromString("2.5"))

	data, err := json.Marshal(c.Response)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(data)

	if !strings.Contains(body, `"expenses":[]`) {
		t.Fatalf("expected rendered empty list, got %s", body)
	}
	if strings.Contains(body, `"incomes"`) || strings.Contains(body, `"message"`) {
		t.Fatalf("expected unrendered sections to be omitted, got %s", body)
	}
	if !strings.Contains(body, `"balance":"7.50"`) {
		t.Fatalf("expected balance, got %s", body)
	}
}

func TestCollectorIgnoresErrors(t *testing.T) {
	c := NewCollector()
	c.ShowError(errors.New("boom"))

	if c.Response.Message != "" || c.Response.Incomes != nil || c.Response.Balance != nil {
		t.Fatalf("expected ShowError to leave the response untouched, got %+v", c.Response)
	}
}

func TestEntryRequestFields(t *testing.T) {
	var req EntryRequest
	if err := json.Unmarshal([]byte(`{"de":"bus","c":"transport"}`), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	fields := req.Fields()
	if fields[domain.FieldCategory] != "transport" || fields[domain.FieldDescription] != "bus" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}
