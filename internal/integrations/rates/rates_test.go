package rates

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchops/merch-service/internal/config"
)

func testParser() *Parser {
	return NewParser(&config.Config{BaseCurrency: "PKR"}, logrus.New())
}

func TestParseRateDocument(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="utf-8"?>
<Rates Date="2025-08-29" Base="PKR">
    <Rate Code="USD">280.15</Rate>
    <Rate Code="EUR">305.40</Rate>
    <Rate Code="GBP">355.00</Rate>
</Rates>`)

	table, docDate, err := testParser().Parse(body)
	require.NoError(t, err)
	assert.Len(t, table, 3)
	assert.True(t, table["USD"].Equal(decimal.RequireFromString("280.15")))
	assert.True(t, table["EUR"].Equal(decimal.RequireFromString("305.40")))
	assert.Equal(t, time.Date(2025, time.August, 29, 0, 0, 0, 0, time.UTC), docDate)
}

func TestParseSkipsBaseCurrencyRow(t *testing.T) {
	body := []byte(`<Rates Base="PKR"><Rate Code="PKR">1</Rate><Rate Code="USD">280</Rate></Rates>`)
	table, docDate, err := testParser().Parse(body)
	require.NoError(t, err)
	assert.Len(t, table, 1)
	assert.NotContains(t, table, "PKR")
	assert.True(t, docDate.IsZero())
}

func TestParseRejectsMismatchedBase(t *testing.T) {
	body := []byte(`<Rates Base="USD"><Rate Code="EUR">1.1</Rate></Rates>`)
	_, _, err := testParser().Parse(body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base currency")
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"not XML":         `not xml at all <<<`,
		"no Rates":        `<Other/>`,
		"empty table":     `<Rates Base="PKR"></Rates>`,
		"missing code":    `<Rates><Rate>280</Rate></Rates>`,
		"bad value":       `<Rates><Rate Code="USD">abc</Rate></Rates>`,
		"negative value":  `<Rates><Rate Code="USD">-280</Rate></Rates>`,
		"zero value":      `<Rates><Rate Code="USD">0</Rate></Rates>`,
		"unparsable date": `<Rates Date="29/08/2025"><Rate Code="USD">280</Rate></Rates>`,
	}
	for name, body := range cases {
		_, _, err := testParser().Parse([]byte(body))
		assert.Error(t, err, name)
	}
}
