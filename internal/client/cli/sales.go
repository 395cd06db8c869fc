package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

func (a *App) printSales(list []models.Sale) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No sales.")
		return
	}
	rows := [][]any{{"ID", "DATE", "CLIENT", "ITEMS", "TOTAL"}}
	for _, s := range list {
		rows = append(rows, []any{s.ID, localTime(s.Date), s.Client, len(s.Items), money(s.Total())})
	}
	table(a.out, rows)
}

func (a *App) salesCmd(ctx context.Context, _ []string) error {
	list, err := a.sales.List(ctx)
	if err != nil {
		return err
	}
	a.printSales(list)
	return nil
}

// promptItems reads items until an empty product id is entered.
func (a *App) promptItems() ([]models.SaleItemInput, error) {
	var items []models.SaleItemInput
	for {
		raw, err := getSimpleText(a.reader, fmt.Sprintf("Item %d product id (empty to finish)", len(items)+1), a.out)
		if err != nil {
			return nil, err
		}
		if raw == "" {
			return items, nil
		}
		id, err := parseID(raw)
		if err != nil {
			return nil, err
		}
		rawQty, err := getSimpleText(a.reader, "Quantity", a.out)
		if err != nil {
			return nil, err
		}
		qty, err := parseQuantity(rawQty)
		if err != nil {
			return nil, err
		}
		items = append(items, models.SaleItemInput{ProductID: id, Quantity: qty})
	}
}

func (a *App) saleAddCmd(ctx context.Context, _ []string) error {
	clientName, err := getSimpleText(a.reader, "Client", a.out)
	if err != nil {
		return err
	}
	in := models.SaleInput{Client: clientName}

	if in.Items, err = a.promptItems(); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}

	s, err := a.sales.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Sale #%d recorded, total %s.\n", s.ID, money(s.Total()))
	return nil
}

// saleEditCmd starts from the stored sale. An empty client keeps the current
// one; items are replaced only when the user asks to.
func (a *App) saleEditCmd(ctx context.Context, args []string) error {
	raw, err := a.requireArg(args, "Sale id")
	if err != nil {
		return err
	}
	id, err := parseID(raw)
	if err != nil {
		return err
	}

	cur, err := a.sales.Get(ctx, id)
	if err != nil {
		return err
	}
	in := cur.Input()

	clientName, err := getSimpleText(a.reader, fmt.Sprintf("Client [%s]", in.Client), a.out)
	if err != nil {
		return err
	}
	if clientName != "" {
		in.Client = clientName
	}

	for _, item := range cur.Items {
		fmt.Fprintf(a.out, "  #%d %s x%d\n", item.Product.ID, item.Product.Name, item.Quantity)
	}
	replace, err := a.confirm("Replace items?")
	if err != nil {
		return err
	}
	if replace {
		if in.Items, err = a.promptItems(); err != nil {
			return err
		}
	}

	if err := in.Validate(); err != nil {
		return err
	}
	if _, err := a.sales.Update(ctx, id, in); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Sale #%d updated.\n", id)
	return nil
}

func (a *App) saleDeleteCmd(ctx context.Context, args []string) error {
	raw, err := a.requireArg(args, "Sale id")
	if err != nil {
		return err
	}
	id, err := parseID(raw)
	if err != nil {
		return err
	}

	ok, err := a.confirm(fmt.Sprintf("Delete sale #%d?", id))
	if err != nil || !ok {
		return err
	}
	if err := a.sales.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Sale #%d deleted.\n", id)
	return nil
}

func (a *App) salesByClientCmd(ctx context.Context, args []string) error {
	clientID, err := a.requireArg(args, "Client")
	if err != nil {
		return err
	}
	if strings.TrimSpace(clientID) == "" {
		return invalid("client is required")
	}
	list, err := a.sales.ByClient(ctx, clientID)
	if err != nil {
		return err
	}
	a.printSales(list)
	return nil
}

func (a *App) salesByPeriodCmd(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return invalid("usage: sales-by-period <YYYY-MM-DD> <YYYY-MM-DD>")
	}
	start, err := parseDate(args[0])
	if err != nil {
		return err
	}
	end, err := parseDate(args[1])
	if err != nil {
		return err
	}
	if end.Before(start) {
		return invalid("end date is before start date")
	}

	list, err := a.sales.ByPeriod(ctx, start, end)
	if err != nil {
		return err
	}
	a.printSales(list)
	return nil
}
