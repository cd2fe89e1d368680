package portable_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmwaniki/pesa/internal/ledger"
	"github.com/kmwaniki/pesa/internal/portable"
)

func sampleState() *ledger.State {
	return &ledger.State{
		Accounts: []ledger.Account{{
			ID:             "a1",
			Name:           "Checking",
			Type:           ledger.AccountBank,
			OpeningBalance: decimal.RequireFromString("100"),
			Balance:        decimal.RequireFromString("100"),
		}},
		Expenses: []ledger.Expense{{
			ID:        "e1",
			Date:      time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			Category:  "Rent",
			Amount:    decimal.RequireFromString("500"),
			AccountID: "a1",
			Recurrence: &ledger.Recurrence{
				Enabled: true,
				Period:  ledger.Monthly,
				Start:   time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
			},
		}},
		Currency: ledger.CurrencyUSD,
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, portable.Encode(&buf, sampleState()))

	st, err := portable.Decode(&buf)
	require.NoError(t, err)

	require.Len(t, st.Accounts, 1)
	assert.Equal(t, "Checking", st.Accounts[0].Name)

	require.Len(t, st.Expenses, 1)
	e := st.Expenses[0]
	assert.True(t, e.Amount.Equal(decimal.RequireFromString("500")))
	require.NotNil(t, e.Recurrence)
	assert.Equal(t, ledger.Monthly, e.Recurrence.Period)
	assert.True(t, e.Recurrence.End.IsZero())
}

func TestDecode_UTF8BOM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, portable.Encode(&buf, sampleState()))

	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, buf.Bytes()...)

	st, err := portable.Decode(bytes.NewReader(withBOM))
	require.NoError(t, err)
	assert.Len(t, st.Accounts, 1)
}

func TestDecode_UTF16LE(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, portable.Encode(&buf, sampleState()))

	// Re-encode the ASCII JSON as UTF-16 LE with its BOM, the way
	// Windows tools re-save files.
	utf16 := []byte{0xFF, 0xFE}
	for _, b := range buf.Bytes() {
		utf16 = append(utf16, b, 0x00)
	}

	st, err := portable.Decode(bytes.NewReader(utf16))
	require.NoError(t, err)
	require.Len(t, st.Expenses, 1)
	assert.Equal(t, "Rent", st.Expenses[0].Category)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := portable.Decode(bytes.NewReader([]byte("not json at all")))
	assert.Error(t, err)
}
