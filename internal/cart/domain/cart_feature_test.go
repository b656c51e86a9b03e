package domain_test

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/cucumber/godog"
	"github.com/dwikikusuma/partshop/internal/cart/domain"
	catalog "github.com/dwikikusuma/partshop/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type cartTestContext struct {
	products map[int64]catalog.Product
	cart     *domain.Cart
}

func (c *cartTestContext) reset() {
	c.products = make(map[int64]catalog.Product)
	c.cart = domain.NewCart()
}

func (c *cartTestContext) theCatalog(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		id, err := strconv.ParseInt(row.Cells[0].Value, 10, 64)
		if err != nil {
			return err
		}
		price, err := decimal.NewFromString(row.Cells[1].Value)
		if err != nil {
			return err
		}
		c.products[id] = catalog.Product{ID: id, Price: price, InStock: true}
	}
	return nil
}

func (c *cartTestContext) iAddProduct(id int64) error {
	p, ok := c.products[id]
	if !ok {
		return fmt.Errorf("product %d not in catalog", id)
	}
	c.cart.Add(p)
	return nil
}

func (c *cartTestContext) iSetTheQuantityOfProductTo(id int64, quantity int) error {
	c.cart.SetQuantity(id, quantity)
	return nil
}

func (c *cartTestContext) iRemoveProduct(id int64) error {
	c.cart.Remove(id)
	return nil
}

func (c *cartTestContext) theCartTotalIs(want string) error {
	expected, err := decimal.NewFromString(want)
	if err != nil {
		return err
	}
	if got := c.cart.TotalPrice(); !got.Equal(expected) {
		return fmt.Errorf("expected total %s, got %s", expected, got)
	}
	return nil
}

func (c *cartTestContext) theCartHoldsItems(want int) error {
	if got := c.cart.TotalItemCount(); got != want {
		return fmt.Errorf("expected %d items, got %d", want, got)
	}
	return nil
}

func (c *cartTestContext) theCartHasLines(want int) error {
	if got := c.cart.Len(); got != want {
		return fmt.Errorf("expected %d lines, got %d", want, got)
	}
	return nil
}

func (c *cartTestContext) productHasQuantity(id int64, want int) error {
	li, ok := c.cart.Item(id)
	if !ok {
		return fmt.Errorf("product %d not in cart", id)
	}
	if li.Quantity != want {
		return fmt.Errorf("expected quantity %d, got %d", want, li.Quantity)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^the catalog:$`, tc.theCatalog)
	ctx.Step(`^I add product (\d+)$`, tc.iAddProduct)
	ctx.Step(`^I set the quantity of product (\d+) to (-?\d+)$`, tc.iSetTheQuantityOfProductTo)
	ctx.Step(`^I remove product (\d+)$`, tc.iRemoveProduct)
	ctx.Step(`^the cart total is (-?\d+(?:\.\d+)?)$`, tc.theCartTotalIs)
	ctx.Step(`^the cart holds (\d+) items?$`, tc.theCartHoldsItems)
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^product (\d+) has quantity (\d+)$`, tc.productHasQuantity)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
