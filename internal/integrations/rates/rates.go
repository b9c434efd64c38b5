package rates

import (
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/merchops/merch-service/internal/config"
	"github.com/merchops/merch-service/internal/models"
)

// Parser reads operator-supplied daily rate documents. The service never
// fetches rates itself; the operator uploads the bank's daily XML export
// and a stale table silently skews conversions until the next upload.
type Parser struct {
	base string
	log  *logrus.Logger
}

// NewParser initializes a rate document parser
func NewParser(cfg *config.Config, log *logrus.Logger) *Parser {
	return &Parser{base: cfg.BaseCurrency, log: log}
}

// Parse extracts a rate table from a daily rates XML document of the form:
//
//	<Rates Date="2025-08-29" Base="PKR">
//	    <Rate Code="USD">280.15</Rate>
//	    <Rate Code="EUR">305.40</Rate>
//	</Rates>
//
// Each value is the number of base-currency units per one unit of the coded
// currency. The returned time is the document's Date attribute, or zero if
// the document does not carry one.
func (p *Parser) Parse(body []byte) (models.RateTable, time.Time, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to parse rates XML: %w", err)
	}

	root := doc.FindElement("//Rates")
	if root == nil {
		return nil, time.Time{}, fmt.Errorf("no Rates element found in document")
	}

	if base := root.SelectAttrValue("Base", ""); base != "" && base != p.base {
		return nil, time.Time{}, fmt.Errorf("document base currency %s does not match configured base %s", base, p.base)
	}

	elements := root.FindElements("./Rate")
	if len(elements) == 0 {
		return nil, time.Time{}, fmt.Errorf("no rates found in document")
	}

	table := make(models.RateTable, len(elements))
	for _, el := range elements {
		code := strings.TrimSpace(el.SelectAttrValue("Code", ""))
		if code == "" {
			return nil, time.Time{}, fmt.Errorf("rate element without a currency code")
		}
		if code == p.base {
			// The base currency is implicit with a multiplier of 1
			continue
		}
		value, err := decimal.NewFromString(strings.TrimSpace(el.Text()))
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("invalid rate for %s: %w", code, err)
		}
		if value.Sign() <= 0 {
			return nil, time.Time{}, fmt.Errorf("rate for %s must be positive, got %s", code, value)
		}
		table[code] = value
	}

	var docDate time.Time
	if dateAttr := root.SelectAttrValue("Date", ""); dateAttr != "" {
		parsed, err := time.Parse("2006-01-02", dateAttr)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("invalid document date %q: %w", dateAttr, err)
		}
		docDate = parsed
	}

	p.log.Debugf("Parsed %d rates from document dated %s", len(table), docDate.Format("2006-01-02"))
	return table, docDate, nil
}
